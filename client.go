// Package sentry provides a Go client for the Sentry web API.
//
// Basic usage:
//
//	client, err := sentry.NewClient(
//	    sentry.WithToken(token),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Iterate over all projects using the pagination iterator
//	for project, err := range client.Projects.List(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    slug, _ := project.Slug()
//	    fmt.Println(slug)
//	}
package sentry

import (
	"net/http"
	"time"

	"github.com/tphakala/go-sentry/internal/api"
	"github.com/tphakala/go-sentry/internal/auth"
)

// Default configuration values.
const (
	defaultBaseURL = "https://sentry.io/api/0/"
	defaultTimeout = 30 * time.Second
)

// Client is the Sentry API client.
type Client struct {
	// Organizations provides access to organization operations.
	Organizations OrganizationService

	// Projects provides access to project operations.
	Projects ProjectService

	// Teams provides access to team operations.
	Teams TeamService

	transceiver *api.Transceiver
}

// NewClient creates a new Sentry client with the given options.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		return nil, ErrNoBaseURL
	}

	if cfg.token == "" {
		return nil, ErrNoToken
	}

	creds := &auth.Credentials{
		Token: cfg.token,
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	transceiver, err := api.NewTransceiver(cfg.baseURL, creds, httpClient)
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transceiver.UserAgent = cfg.userAgent
	}

	client := &Client{
		transceiver: transceiver,
	}

	// Initialize services
	client.Organizations = newOrganizationService(client)
	client.Projects = newProjectService(client)
	client.Teams = newTeamService(client)

	return client, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.transceiver.BaseURL.String()
}
