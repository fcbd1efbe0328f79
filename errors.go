package sentry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Sentinel errors for common failure modes.
var (
	ErrNoToken   = errors.New("sentry: no API token configured")
	ErrNoBaseURL = errors.New("sentry: no base URL configured")
)

// MissingAttributeError indicates an accessed key is absent from a
// model's backing document.
type MissingAttributeError struct {
	Key string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("sentry: document has no attribute %q", e.Key)
}

// TransportError indicates a connection-level failure (DNS, timeout,
// refused connection) before any HTTP response was received.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sentry: transport error for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a general Sentry API error.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`

	// Body holds the raw response body for callers that need more than
	// the detail message.
	Body []byte `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sentry: API error %d: %s", e.StatusCode, e.Detail)
}

// AuthenticationError indicates authentication failure (401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("sentry: authentication failed: %s", e.Detail)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// NotFoundError indicates the requested resource was not found (404).
type NotFoundError struct {
	APIError
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	if e.ResourceType != "" && e.ResourceID != "" {
		return fmt.Sprintf("sentry: %s not found: %s", e.ResourceType, e.ResourceID)
	}
	return fmt.Sprintf("sentry: resource not found: %s", e.Detail)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ValidationError indicates invalid request data (400) or a rejected
// client-side argument.
type ValidationError struct {
	APIError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sentry: validation error: %s", e.Detail)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ValidationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// RateLimitError indicates the API rate limit was exceeded (429).
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("sentry: rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "sentry: rate limit exceeded"
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *RateLimitError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ServerError indicates an internal server error (5xx).
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("sentry: server error %d: %s", e.StatusCode, e.Detail)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ServerError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// parseError converts a non-2xx HTTP response into the appropriate
// error type. Sentry reports errors as {"detail": "..."} bodies.
func parseError(statusCode int, body []byte, headers http.Header) error {
	base := APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	// Try to parse structured JSON error response
	if err := json.Unmarshal(body, &base); err != nil || base.Detail == "" {
		// Fallback to raw body if not valid JSON
		base.Detail = string(body)
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthenticationError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case statusCode == http.StatusBadRequest:
		return &ValidationError{APIError: base}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{
			APIError:   base,
			RetryAfter: parseRetryAfter(headers.Get("Retry-After")),
		}
	case statusCode >= http.StatusInternalServerError:
		return &ServerError{APIError: base}
	default:
		return &base
	}
}

// notFoundHint annotates a NotFoundError with the resource being
// fetched; the Sentry 404 body does not name it.
func notFoundHint(err error, resourceType, resourceID string) error {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		notFound.ResourceType = resourceType
		notFound.ResourceID = resourceID
	}
	return err
}

// parseRetryAfter parses the Retry-After header value.
// It handles both seconds (integer) and HTTP-date formats.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	// Try parsing as seconds first
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 1123)
	if t, err := time.Parse(time.RFC1123, value); err == nil {
		duration := time.Until(t)
		if duration > 0 {
			return duration
		}
	}

	return 0
}
