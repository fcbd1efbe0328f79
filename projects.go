package sentry

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/tphakala/go-sentry/internal/api"
)

// EventResolution is the timespan event counts are aggregated over.
// Allowed values are fixed by the project stats endpoint.
type EventResolution string

const (
	ResolutionSeconds EventResolution = "10s"
	ResolutionHour    EventResolution = "1h"
	ResolutionDay     EventResolution = "1d"
)

// ProjectService provides operations on Sentry projects.
type ProjectService interface {
	// Get retrieves a single project by organization and project slug.
	Get(ctx context.Context, organizationSlug, projectSlug string, opts ...RequestOption) (*Project, error)

	// List returns an iterator over all projects the token can see.
	// The iterator fetches pages lazily as you iterate.
	List(ctx context.Context, opts ...RequestOption) iter.Seq2[*Project, error]
}

// projectService implements ProjectService.
type projectService struct {
	client *Client
}

func newProjectService(client *Client) *projectService {
	return &projectService{client: client}
}

// Get retrieves a single project.
func (s *projectService) Get(ctx context.Context, organizationSlug, projectSlug string, opts ...RequestOption) (*Project, error) {
	if err := validateSlug("organization", organizationSlug); err != nil {
		return nil, err
	}
	if err := validateSlug("project", projectSlug); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	project, err := fetchModel[Project](ctx, s.client, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("projects/%s/%s/", url.PathEscape(organizationSlug), url.PathEscape(projectSlug)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, nil)

	if err != nil {
		return nil, notFoundHint(err, "project", projectSlug)
	}

	return project, nil
}

// List returns an iterator over all projects.
func (s *projectService) List(ctx context.Context, opts ...RequestOption) iter.Seq2[*Project, error] {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return paginate[Project](ctx, s.client, &api.Request{
		Method:  http.MethodGet,
		Path:    "projects/",
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, nil)
}

// Project represents a Sentry project.
type Project struct {
	Model
}

// Slug returns the project slug.
func (p *Project) Slug() (string, error) {
	return p.GetString("slug")
}

// OrganizationSlug returns the slug of the owning organization, read
// from the nested organization object of the project body.
func (p *Project) OrganizationSlug() (string, error) {
	v, err := p.Get("organization")
	if err != nil {
		return "", err
	}
	org, ok := v.(map[string]any)
	if !ok {
		return "", fmt.Errorf("sentry: attribute %q is %T, not object", "organization", v)
	}
	slug, ok := org["slug"].(string)
	if !ok {
		return "", &MissingAttributeError{Key: "organization.slug"}
	}
	return slug, nil
}

// Issues iterates over the project's issues. Each issue carries the
// organization slug so it can address the issue events endpoint, which
// is organization-scoped.
func (p *Project) Issues(ctx context.Context, opts ...RequestOption) iter.Seq2[*Issue, error] {
	organizationSlug, err := p.OrganizationSlug()
	if err != nil {
		return errSeq[*Issue](err)
	}
	projectSlug, err := p.Slug()
	if err != nil {
		return errSeq[*Issue](err)
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return paginate[Issue](ctx, p.client, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("projects/%s/%s/issues/", url.PathEscape(organizationSlug), url.PathEscape(projectSlug)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, Document{"organization_slug": organizationSlug})
}

// EventCounts returns the project's event counts from the stats
// endpoint. A non-empty resolution selects the aggregation timespan.
//
// Sentry endpoint documentation:
// https://docs.sentry.io/api/projects/retrieve-event-counts-for-a-project/
func (p *Project) EventCounts(ctx context.Context, resolution EventResolution, opts ...RequestOption) ([]EventCount, error) {
	organizationSlug, err := p.OrganizationSlug()
	if err != nil {
		return nil, err
	}
	projectSlug, err := p.Slug()
	if err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)
	if resolution != "" {
		reqCfg.params.Set("resolution", string(resolution))
	}

	var counts []EventCount
	err = fetchRaw(ctx, p.client, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("projects/%s/%s/stats/", url.PathEscape(organizationSlug), url.PathEscape(projectSlug)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, &counts)

	if err != nil {
		return nil, err
	}

	return counts, nil
}

// TagValues iterates over the values seen for one of the project's tag
// keys.
func (p *Project) TagValues(ctx context.Context, key string, opts ...RequestOption) iter.Seq2[*TagValue, error] {
	if key == "" {
		return errSeq[*TagValue](&ValidationError{
			APIError: APIError{Detail: "tag key cannot be empty"},
		})
	}

	organizationSlug, err := p.OrganizationSlug()
	if err != nil {
		return errSeq[*TagValue](err)
	}
	projectSlug, err := p.Slug()
	if err != nil {
		return errSeq[*TagValue](err)
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return paginate[TagValue](ctx, p.client, &api.Request{
		Method: http.MethodGet,
		Path: fmt.Sprintf("projects/%s/%s/tags/%s/values/",
			url.PathEscape(organizationSlug), url.PathEscape(projectSlug), url.PathEscape(key)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, nil)
}

// TagValue represents one observed value of a project tag key.
type TagValue struct {
	Model
}

// Value returns the tag value itself.
func (t *TagValue) Value() (string, error) {
	return t.GetString("value")
}
