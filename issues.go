package sentry

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/tphakala/go-sentry/internal/api"
)

// Issue represents a Sentry issue: a group of similar events. Issues are
// reached through [Project.Issues]; the issue events endpoint is
// organization-scoped, so each issue carries the organization slug as an
// extra field.
type Issue struct {
	Model
}

// ID returns the issue identifier. Sentry serializes issue IDs as
// strings.
func (i *Issue) ID() (string, error) {
	return i.GetString("id")
}

// Title returns the issue title.
func (i *Issue) Title() (string, error) {
	return i.GetString("title")
}

// OrganizationSlug returns the slug of the owning organization, injected
// when the issue was fetched (issue bodies do not carry it).
func (i *Issue) OrganizationSlug() (string, error) {
	return i.GetString("organization_slug")
}

// Events iterates over the issue's events.
func (i *Issue) Events(ctx context.Context, opts ...RequestOption) iter.Seq2[*Event, error] {
	organizationSlug, err := i.OrganizationSlug()
	if err != nil {
		return errSeq[*Event](err)
	}
	id, err := i.ID()
	if err != nil {
		return errSeq[*Event](err)
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	return paginate[Event](ctx, i.client, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("organizations/%s/issues/%s/events/", url.PathEscape(organizationSlug), url.PathEscape(id)),
		Query:   reqCfg.params,
		Headers: reqCfg.headers,
	}, nil)
}
