package sentry

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/tphakala/go-sentry/internal/api"
)

// TeamService provides operations on Sentry teams.
type TeamService interface {
	// List returns an iterator over all teams of an organization.
	// The iterator fetches pages lazily as you iterate.
	List(ctx context.Context, organizationSlug string, opts ...RequestOption) iter.Seq2[*Team, error]

	// Get retrieves a single team by organization and team slug.
	Get(ctx context.Context, organizationSlug, teamSlug string, opts ...RequestOption) (*Team, error)

	// Create creates a new team in the organization.
	Create(ctx context.Context, organizationSlug string, req *CreateTeamRequest, opts ...RequestOption) (*Team, error)

	// Delete removes a team by organization and team slug.
	Delete(ctx context.Context, organizationSlug, teamSlug string, opts ...RequestOption) error
}

// teamService implements TeamService.
type teamService struct {
	client *Client
}

func newTeamService(client *Client) *teamService {
	return &teamService{client: client}
}

// CreateTeamRequest contains data for creating a new team. At least one
// of Name or Slug must be set; Sentry derives the missing one.
type CreateTeamRequest struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// validateCreateTeamRequest validates the create team request.
func validateCreateTeamRequest(req *CreateTeamRequest) error {
	if req == nil {
		return &ValidationError{
			APIError: APIError{Detail: "create request cannot be nil"},
		}
	}
	if req.Name == "" && req.Slug == "" {
		return &ValidationError{
			APIError: APIError{Detail: "team name or slug is required"},
		}
	}
	return nil
}

// List returns an iterator over all teams of an organization.
func (s *teamService) List(ctx context.Context, organizationSlug string, opts ...RequestOption) iter.Seq2[*Team, error] {
	if err := validateSlug("organization", organizationSlug); err != nil {
		return errSeq[*Team](err)
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return paginate[Team](ctx, s.client, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("organizations/%s/teams/", url.PathEscape(organizationSlug)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, Document{"organization_slug": organizationSlug})
}

// Get retrieves a single team.
func (s *teamService) Get(ctx context.Context, organizationSlug, teamSlug string, opts ...RequestOption) (*Team, error) {
	if err := validateSlug("organization", organizationSlug); err != nil {
		return nil, err
	}
	if err := validateSlug("team", teamSlug); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	team, err := fetchModel[Team](ctx, s.client, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("teams/%s/%s/", url.PathEscape(organizationSlug), url.PathEscape(teamSlug)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, Document{"organization_slug": organizationSlug})

	if err != nil {
		return nil, notFoundHint(err, "team", teamSlug)
	}

	return team, nil
}

// Create creates a new team in the organization.
func (s *teamService) Create(ctx context.Context, organizationSlug string, req *CreateTeamRequest, opts ...RequestOption) (*Team, error) {
	if err := validateSlug("organization", organizationSlug); err != nil {
		return nil, err
	}
	if err := validateCreateTeamRequest(req); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return fetchModel[Team](ctx, s.client, &api.Request{
		Method:  http.MethodPost,
		Path:    fmt.Sprintf("organizations/%s/teams/", url.PathEscape(organizationSlug)),
		Body:    req,
		Headers: reqCfg.headers,
	}, Document{"organization_slug": organizationSlug})
}

// Delete removes a team.
func (s *teamService) Delete(ctx context.Context, organizationSlug, teamSlug string, opts ...RequestOption) error {
	if err := validateSlug("organization", organizationSlug); err != nil {
		return err
	}
	if err := validateSlug("team", teamSlug); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	err := deleteResource(ctx, s.client, &api.Request{
		Method:  http.MethodDelete,
		Path:    fmt.Sprintf("teams/%s/%s/", url.PathEscape(organizationSlug), url.PathEscape(teamSlug)),
		Headers: reqCfg.headers,
	})

	if err != nil {
		return notFoundHint(err, "team", teamSlug)
	}

	return nil
}

// Team represents a Sentry team.
type Team struct {
	Model
}

// Slug returns the team slug.
func (t *Team) Slug() (string, error) {
	return t.GetString("slug")
}

// OrganizationSlug returns the slug of the owning organization,
// injected when the team was fetched.
func (t *Team) OrganizationSlug() (string, error) {
	return t.GetString("organization_slug")
}
