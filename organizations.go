package sentry

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/tphakala/go-sentry/internal/api"
)

// OrganizationService provides operations on Sentry organizations.
type OrganizationService interface {
	// Get retrieves a single organization by slug.
	Get(ctx context.Context, organizationSlug string, opts ...RequestOption) (*Organization, error)
}

// organizationService implements OrganizationService.
type organizationService struct {
	client *Client
}

func newOrganizationService(client *Client) *organizationService {
	return &organizationService{client: client}
}

// Get retrieves a single organization by slug.
func (s *organizationService) Get(ctx context.Context, organizationSlug string, opts ...RequestOption) (*Organization, error) {
	if err := validateSlug("organization", organizationSlug); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	org, err := fetchModel[Organization](ctx, s.client, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("organizations/%s/", url.PathEscape(organizationSlug)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, nil)

	if err != nil {
		return nil, notFoundHint(err, "organization", organizationSlug)
	}

	return org, nil
}

// Organization represents a Sentry organization.
type Organization struct {
	Model
}

// Slug returns the organization slug.
func (o *Organization) Slug() (string, error) {
	return o.GetString("slug")
}

// Teams iterates over the organization's teams.
func (o *Organization) Teams(ctx context.Context, opts ...RequestOption) iter.Seq2[*Team, error] {
	slug, err := o.Slug()
	if err != nil {
		return errSeq[*Team](err)
	}
	return o.client.Teams.List(ctx, slug, opts...)
}

// validateSlug checks that a resource slug is not empty.
func validateSlug(resource, slug string) error {
	if slug == "" {
		return &ValidationError{
			APIError: APIError{Detail: resource + " slug cannot be empty"},
		}
	}
	return nil
}
