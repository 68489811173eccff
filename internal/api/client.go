// Package api is a thin client for the comptes collection endpoint.
//
// The transport contract is deliberately small: one resource, four verbs.
// Non-2xx responses become *Error; transport failures pass through wrapped.
// The client never retries; recovery policy belongs to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"comptes-cli/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// New creates a client for the given base URL (no trailing slash), e.g.
// "http://localhost:8080/banque". timeout bounds each round trip in
// addition to any context deadline.
func New(base string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// BaseURL reports the configured endpoint root.
func (c *Client) BaseURL() string { return c.base }

// List fetches the full collection. Element order is whatever the server
// returns; callers must not reorder.
func (c *Client) List(ctx context.Context) ([]model.Compte, error) {
	var comptes []model.Compte
	if err := c.do(ctx, http.MethodGet, "/comptes", nil, &comptes); err != nil {
		return nil, err
	}
	return comptes, nil
}

// Create posts a draft and returns the created record (with its
// server-assigned id) when the server echoes one back.
func (c *Client) Create(ctx context.Context, draft model.Fields) (*model.Compte, error) {
	var created model.Compte
	if err := c.do(ctx, http.MethodPost, "/comptes", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces all editable fields of the record with the given id.
func (c *Client) Update(ctx context.Context, id int64, fields model.Fields) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/comptes/%d", id), fields, nil)
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/comptes/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	reqID := uuid.NewString()
	log := c.log.With().Str("reqId", reqID).Str("method", method).Str("path", path).Logger()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(method, path, resp)
		log.Error().Int("status", resp.StatusCode).Str("body", apiErr.Body).Msg("server rejected request")
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			// Some backends answer 2xx with an empty body on create; the
			// caller then relies on the follow-up refresh for ids.
			if err == io.EOF {
				return nil
			}
			log.Error().Err(err).Msg("decode response")
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	log.Debug().Int("status", resp.StatusCode).Msg("ok")
	return nil
}
