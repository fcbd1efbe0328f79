package sentry_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-sentry"
)

func TestAPIError(t *testing.T) {
	err := &sentry.APIError{
		StatusCode: 500,
		Detail:     "internal error",
	}
	assert.Equal(t, "sentry: API error 500: internal error", err.Error())
}

func TestMissingAttributeError(t *testing.T) {
	err := &sentry.MissingAttributeError{Key: "short id"}
	assert.Equal(t, `sentry: document has no attribute "short id"`, err.Error())
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &sentry.TransportError{
		URL: "https://sentry.io/api/0/projects/",
		Err: cause,
	}
	assert.Contains(t, err.Error(), "transport error")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestAuthenticationError(t *testing.T) {
	err := &sentry.AuthenticationError{
		APIError: sentry.APIError{
			StatusCode: 401,
			Detail:     "invalid token",
		},
	}
	assert.Equal(t, "sentry: authentication failed: invalid token", err.Error())

	// Test errors.As
	var apiErr *sentry.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestNotFoundError(t *testing.T) {
	t.Run("with resource info", func(t *testing.T) {
		err := &sentry.NotFoundError{
			APIError:     sentry.APIError{StatusCode: 404},
			ResourceType: "project",
			ResourceID:   "api",
		}
		assert.Equal(t, "sentry: project not found: api", err.Error())
	})

	t.Run("without resource info", func(t *testing.T) {
		err := &sentry.NotFoundError{
			APIError: sentry.APIError{
				StatusCode: 404,
				Detail:     "not found",
			},
		}
		assert.Equal(t, "sentry: resource not found: not found", err.Error())
	})
}

func TestValidationError(t *testing.T) {
	err := &sentry.ValidationError{
		APIError: sentry.APIError{
			StatusCode: 400,
			Detail:     "bad request",
		},
	}
	assert.Equal(t, "sentry: validation error: bad request", err.Error())
}

func TestRateLimitError(t *testing.T) {
	t.Run("with retry-after", func(t *testing.T) {
		err := &sentry.RateLimitError{
			APIError:   sentry.APIError{StatusCode: 429},
			RetryAfter: 30 * time.Second,
		}
		assert.Equal(t, "sentry: rate limit exceeded, retry after 30s", err.Error())
	})

	t.Run("without retry-after", func(t *testing.T) {
		err := &sentry.RateLimitError{
			APIError: sentry.APIError{StatusCode: 429},
		}
		assert.Equal(t, "sentry: rate limit exceeded", err.Error())
	})
}

func TestServerError(t *testing.T) {
	err := &sentry.ServerError{
		APIError: sentry.APIError{
			StatusCode: 503,
			Detail:     "service unavailable",
		},
	}
	assert.Equal(t, "sentry: server error 503: service unavailable", err.Error())
}

func TestErrorMapping(t *testing.T) {
	// Drive the status-to-type mapping through the HTTP surface.
	tests := []struct {
		name   string
		status int
		header map[string]string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 maps to AuthenticationError",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var authErr *sentry.AuthenticationError
				require.ErrorAs(t, err, &authErr)
			},
		},
		{
			name:   "403 maps to AuthenticationError",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				var authErr *sentry.AuthenticationError
				require.ErrorAs(t, err, &authErr)
			},
		},
		{
			name:   "429 maps to RateLimitError with Retry-After",
			status: http.StatusTooManyRequests,
			header: map[string]string{"Retry-After": "30"},
			check: func(t *testing.T, err error) {
				var rateErr *sentry.RateLimitError
				require.ErrorAs(t, err, &rateErr)
				assert.Equal(t, 30*time.Second, rateErr.RetryAfter)
			},
		},
		{
			name:   "500 maps to ServerError",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var serverErr *sentry.ServerError
				require.ErrorAs(t, err, &serverErr)
			},
		},
		{
			name:   "404 carries status and body",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var apiErr *sentry.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
				assert.Equal(t, "the detail", apiErr.Detail)
				assert.JSONEq(t, `{"detail": "the detail"}`, string(apiErr.Body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				_, err := w.Write([]byte(`{"detail": "the detail"}`))
				assert.NoError(t, err)
			})

			org, err := client.Organizations.Get(context.Background(), "acme")
			require.Error(t, err)
			assert.Nil(t, org)
			tt.check(t, err)
		})
	}
}

func TestErrorsAs(t *testing.T) {
	// Test that all error types can be detected with errors.As
	tests := []struct {
		name string
		err  error
	}{
		{"AuthenticationError", &sentry.AuthenticationError{APIError: sentry.APIError{StatusCode: 401}}},
		{"NotFoundError", &sentry.NotFoundError{APIError: sentry.APIError{StatusCode: 404}}},
		{"ValidationError", &sentry.ValidationError{APIError: sentry.APIError{StatusCode: 400}}},
		{"RateLimitError", &sentry.RateLimitError{APIError: sentry.APIError{StatusCode: 429}}},
		{"ServerError", &sentry.ServerError{APIError: sentry.APIError{StatusCode: 500}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *sentry.APIError
			require.ErrorAs(t, tt.err, &apiErr, "should be detectable as APIError")
		})
	}
}
