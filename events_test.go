package sentry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-sentry"
)

// issuesFixture serves a project, one page of issues, and the events of
// issue 42 so tests can exercise the full navigation chain.
func issuesFixture(t *testing.T, events http.HandlerFunc) *sentry.Client {
	t.Helper()
	return setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects/acme/api/":
			writeJSON(t, w, map[string]any{
				"slug":         "api",
				"organization": map[string]any{"slug": "acme"},
			})
		case "/projects/acme/api/issues/":
			w.Header().Set("Link", linkHeader(r.Host, r.URL.Path, "next", "0:1:0", false))
			writeJSON(t, w, []map[string]any{{"id": "42", "title": "broken pipe"}})
		case "/organizations/acme/issues/42/events/":
			events(w, r)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})
}

func TestProject_Issues(t *testing.T) {
	client := issuesFixture(t, nil)

	ctx := context.Background()
	project, err := client.Projects.Get(ctx, "acme", "api")
	require.NoError(t, err)

	issues, err := sentry.Collect(project.Issues(ctx))
	require.NoError(t, err)
	require.Len(t, issues, 1)

	id, err := issues[0].ID()
	require.NoError(t, err)
	assert.Equal(t, "42", id)

	title, err := issues[0].Title()
	require.NoError(t, err)
	assert.Equal(t, "broken pipe", title)

	// The organization slug is injected by the client, not the body.
	orgSlug, err := issues[0].OrganizationSlug()
	require.NoError(t, err)
	assert.Equal(t, "acme", orgSlug)
	assert.NotContains(t, issues[0].Raw(), "organization_slug")
}

func TestIssue_Events(t *testing.T) {
	client := issuesFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Link", linkHeader(r.Host, r.URL.Path, "next", "0:1:0", false))
		writeJSON(t, w, []map[string]any{
			{
				"id": "deadbeef",
				"tags": []map[string]any{
					{"key": "browser", "value": "Chrome"},
					{"key": "os", "value": "Linux"},
				},
			},
		})
	})

	ctx := context.Background()
	project, err := client.Projects.Get(ctx, "acme", "api")
	require.NoError(t, err)

	issue, err := sentry.First(project.Issues(ctx))
	require.NoError(t, err)

	events, err := sentry.Collect(issue.Events(ctx))
	require.NoError(t, err)
	require.Len(t, events, 1)

	id, err := events[0].ID()
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", id)

	tags, err := events[0].Tags()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"browser": "Chrome",
		"os":      "Linux",
	}, tags)
}

func TestEvent_Tags(t *testing.T) {
	t.Run("missing tags attribute", func(t *testing.T) {
		client := issuesFixture(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, []map[string]any{{"id": "deadbeef"}})
		})

		ctx := context.Background()
		project, err := client.Projects.Get(ctx, "acme", "api")
		require.NoError(t, err)

		issue, err := sentry.First(project.Issues(ctx))
		require.NoError(t, err)

		event, err := sentry.First(issue.Events(ctx))
		require.NoError(t, err)

		_, err = event.Tags()
		require.Error(t, err)

		var missing *sentry.MissingAttributeError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "tags", missing.Key)
	})
}

func TestEventCount(t *testing.T) {
	t.Run("unmarshals pair format", func(t *testing.T) {
		var count sentry.EventCount
		err := json.Unmarshal([]byte(`[1700000000, 5]`), &count)
		require.NoError(t, err)
		assert.Equal(t, int64(1700000000), count.Timestamp)
		assert.Equal(t, int64(5), count.Count)
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		var count sentry.EventCount
		err := json.Unmarshal([]byte(`[1700000000]`), &count)
		require.Error(t, err)
	})

	t.Run("marshals back to pair format", func(t *testing.T) {
		data, err := json.Marshal(sentry.EventCount{Timestamp: 1700000000, Count: 5})
		require.NoError(t, err)
		assert.JSONEq(t, `[1700000000, 5]`, string(data))
	})
}
