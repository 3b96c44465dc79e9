// Package client fetches the character record set over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/rmtable/pkg/types"
)

// RequestIDHeader carries the per-fetch request ID.
const RequestIDHeader = "X-Request-ID"

// Client is a types.Source backed by a single GET of a fixed endpoint.
// No query parameters are sent; filtering and paging happen locally.
type Client struct {
	endpoint string
	http     *http.Client
	log      logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for endpoint.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     http.DefaultClient,
		log:      discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs the GET and decodes the results array. Any failure wraps
// types.ErrFetch; the cause is logged and kept in the error chain.
// There is no retry and no timeout beyond what ctx imposes.
func (c *Client) Fetch(ctx context.Context) ([]types.Character, error) {
	reqID := newRequestID()
	log := c.log.WithFields(logrus.Fields{
		"endpoint":   c.endpoint,
		"request_id": reqID,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, c.fail(log, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	log.Debug("fetching characters")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(log, "request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, c.fail(log, "status", fmt.Errorf("unexpected status %s", resp.Status))
	}

	var page types.CharacterPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, c.fail(log, "decode response", err)
	}
	if page.Results == nil {
		page.Results = []types.Character{}
	}

	log.WithField("count", len(page.Results)).Info("fetched characters")
	return page.Results, nil
}

func (c *Client) fail(log logrus.FieldLogger, stage string, err error) error {
	log.WithError(err).WithField("stage", stage).Debug("fetch failed")
	return fmt.Errorf("%w: %s: %w", types.ErrFetch, stage, err)
}

// newRequestID returns a UUID v7, falling back to v4.
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
