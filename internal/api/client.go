// Package api holds the HTTP client the service layer calls through.
// The client decodes every response into a loose record; HTTP status
// codes stay inside this package, the service contract above it is the
// success flag carried in the body.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"hrmobile/internal/platform/config"
	"hrmobile/internal/platform/metrics"
	"hrmobile/internal/record"
)

// TokenSource supplies the current bearer token, empty when logged out.
type TokenSource func() string

type Client struct {
	baseURL   string
	httpc     *http.Client
	token     TokenSource
	collector *metrics.Collector
}

func New(cfg config.Config, token TokenSource, collector *metrics.Collector) *Client {
	transport := http.DefaultTransport
	if cfg.DebugHTTP && cfg.Environment != "production" {
		transport = &DebugTransport{Base: transport}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpc: &http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: transport,
		},
		token:     token,
		collector: collector,
	}
}

// Do performs one API call and returns the decoded response body. A nil
// error with a body whose success flag is false is a service-reported
// failure; a non-nil error is a transport or decode failure.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (record.Record, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.collector.Record(false, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.collector.Record(false, time.Since(start))
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.collector.Record(resp.StatusCode < 500, time.Since(start))
	return record.Record(decoded), nil
}
