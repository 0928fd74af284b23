package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hrmobile/internal/platform/config"
	"hrmobile/internal/platform/metrics"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		APIBaseURL:  baseURL,
		Environment: "test",
		HTTPTimeout: 5 * time.Second,
		PageSize:    10,
	}
}

func TestDoDecodesEnvelope(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"employees":[]}}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL), func() string { return "tok123" }, metrics.New())
	body, err := client.Do(context.Background(), http.MethodGet, "/employees", url.Values{"page": {"1"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if success, _ := body["success"].(bool); !success {
		t.Fatalf("expected success envelope, got %v", body)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected request id header")
	}
}

func TestDoServiceFailureIsNotTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"invalid_payload","message":"bad input"}}`))
	}))
	defer server.Close()

	client := New(testConfig(server.URL), nil, nil)
	body, err := client.Do(context.Background(), http.MethodPost, "/employees", nil, map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("enveloped failure must not be a transport error: %v", err)
	}
	if success, _ := body["success"].(bool); success {
		t.Fatal("expected success=false")
	}
}

func TestDoUndecodableErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := New(testConfig(server.URL), nil, metrics.New())
	_, err := client.Do(context.Background(), http.MethodGet, "/employees", nil, nil)
	if err == nil {
		t.Fatal("expected transport error for undecodable failure body")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

type failingTransport struct{ err error }

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestDebugTransportReturnsErrorUnmodified(t *testing.T) {
	sentinel := errors.New("connection refused")
	transport := &DebugTransport{Base: failingTransport{err: sentinel}}

	req := httptest.NewRequest(http.MethodGet, "http://example.test/x", nil)
	_, err := transport.RoundTrip(req)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error unchanged, got %v", err)
	}
}

func TestDebugTransportPreservesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := &http.Client{Transport: &DebugTransport{}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(data) != `{"success":true}` {
		t.Fatalf("body altered by debug transport: %q", data)
	}
}
