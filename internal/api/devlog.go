package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const previewLimit = 200

// DebugTransport logs every request and response for development use.
// It observes only: the request and response pass through untouched and
// transport errors are returned unmodified.
type DebugTransport struct {
	Base http.RoundTripper
}

func (t *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		slog.Info("api call failed",
			"method", req.Method,
			"url", req.URL.String(),
			"durationMs", elapsed.Milliseconds(),
			"err", err)
		return nil, err
	}

	preview, restored := previewBody(resp)
	resp.Body = restored
	slog.Info("api call",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"durationMs", elapsed.Milliseconds(),
		"body", preview)
	return resp, nil
}

// previewBody reads the response body for logging and hands back a
// replacement reader so the caller still sees the full payload.
func previewBody(resp *http.Response) (string, io.ReadCloser) {
	if resp.Body == nil {
		return "", resp.Body
	}
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return "[body read error]", io.NopCloser(bytes.NewReader(nil))
	}
	restored := io.NopCloser(bytes.NewReader(data))

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var compact bytes.Buffer
		if json.Compact(&compact, data) == nil {
			return truncate(compact.String()), restored
		}
		return "[json parse error]", restored
	}
	return truncate(string(data)), restored
}

func truncate(s string) string {
	if len(s) > previewLimit {
		return s[:previewLimit]
	}
	return s
}
