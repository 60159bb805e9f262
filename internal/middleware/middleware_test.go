package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen == "" {
		t.Error("Expected a generated request id in context")
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Errorf("Response header %q does not match context id %q", rr.Header().Get("X-Request-ID"), seen)
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "client-id-123" {
		t.Errorf("Expected incoming id to be reused, got %q", seen)
	}
}

func TestCORS_PreflightAndHeaders(t *testing.T) {
	called := false
	h := CORS("http://localhost:5173")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", rr.Code)
	}
	if called {
		t.Error("Preflight must not reach the handler")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Unexpected allow-origin %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if !called {
		t.Error("Expected GET to reach the handler")
	}
}
