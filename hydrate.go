package sentry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/tphakala/go-sentry/internal/api"
)

// do dispatches one request through the transceiver, classifying
// connection-level failures as *TransportError.
func (c *Client) do(ctx context.Context, req *api.Request) (*api.Response, error) {
	resp, err := c.transceiver.Do(ctx, req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, &TransportError{URL: urlErr.URL, Err: err}
		}
		return nil, err
	}
	return resp, nil
}

// fetchModel performs a request whose response body is a single JSON
// object and hydrates it as one model instance, attaching the client
// back-reference and any extra fields.
func fetchModel[T any, PT interface {
	*T
	hydratable
}](ctx context.Context, c *Client, req *api.Request, extra Document) (*T, error) {
	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	var doc Document
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("sentry: decoding response: %w", err)
	}

	m := new(T)
	PT(m).hydrate(c, doc, extra)
	return m, nil
}

// fetchRaw performs a request and decodes the JSON body into out
// unchanged, with no model hydration. A nil out discards the body.
func fetchRaw(ctx context.Context, c *Client, req *api.Request, out any) error {
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	if out != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return fmt.Errorf("sentry: decoding response: %w", err)
		}
	}

	return nil
}

// deleteResource performs a DELETE request; no body parsing beyond error
// translation.
func deleteResource(ctx context.Context, c *Client, req *api.Request) error {
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	return nil
}

// paginate returns a lazy iterator over every element of a paginated
// endpoint. The initial request carries the caller's query parameters;
// follow-up pages are addressed by the next-cursor URL from the prior
// page's Link header, which is self-contained. Iteration stops when the
// next cursor reports no further results or a page comes back empty.
//
// The sequence is single-pass and fetches no page ahead of consumption.
// An error on page N is yielded when consumption reaches it; elements
// already yielded from earlier pages stay valid.
func paginate[T any, PT interface {
	*T
	hydratable
}](ctx context.Context, c *Client, req *api.Request, extra Document) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		next := req

		for {
			resp, err := c.do(ctx, next)
			if err != nil {
				yield(nil, err)
				return
			}

			if resp.StatusCode >= http.StatusBadRequest {
				yield(nil, parseError(resp.StatusCode, resp.Body, resp.Headers))
				return
			}

			var docs []Document
			if err := json.Unmarshal(resp.Body, &docs); err != nil {
				yield(nil, fmt.Errorf("sentry: decoding page: %w", err))
				return
			}

			if len(docs) == 0 {
				return
			}

			for _, doc := range docs {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				m := new(T)
				PT(m).hydrate(c, doc, extra)
				if !yield(m, nil) {
					return
				}
			}

			links := api.ParseLink(resp.Headers.Get("Link"))
			if links.Next == nil || !links.Next.Results {
				return
			}

			next = &api.Request{
				Method:  http.MethodGet,
				URL:     links.Next.URL,
				Headers: req.Headers,
			}
		}
	}
}

// errSeq returns an iterator that yields a single error. Navigation
// methods use it when the request cannot even be built.
func errSeq[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
