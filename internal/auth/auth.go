// Package auth provides Sentry API token authentication.
package auth

import "net/http"

// Credentials holds a Sentry API authentication token.
type Credentials struct {
	Token string
}

// Apply adds the bearer authorization header to an HTTP request.
func (c *Credentials) Apply(req *http.Request) {
	if c == nil {
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
}

// Valid reports whether credentials are configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.Token != ""
}
