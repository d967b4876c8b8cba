package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/metrics", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/watchdog/42", "/status/42", "/", "/items"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "keeps caller id", incoming: "abc-123", keep: true},
		{name: "generates when missing", incoming: "", keep: false},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/watchdog/42", nil)
			if tt.incoming != "" {
				req.Header.Set(requestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(requestIDHeader)
			if got == "" || got != seen {
				t.Fatalf("response id %q does not match context id %q", got, seen)
			}
			if tt.keep && got != tt.incoming {
				t.Fatalf("expected caller id to be kept, got %q", got)
			}
			if !tt.keep && (got == tt.incoming || len(got) != 36) {
				t.Fatalf("expected generated uuid, got %q", got)
			}
		})
	}
}

func TestRequestLogging_RecordsRouteAndStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{itemID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	observer := &recordingObserver{}
	handler := RequestLogging(nil, observer, captureRoute(mux))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/9", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/unknown", nil))

	want := []string{"GET /items/{itemID} 418", unmatchedRoute + " 404"}
	if len(observer.routes) != len(want) {
		t.Fatalf("unexpected observations: %v", observer.routes)
	}
	for i := range want {
		if observer.routes[i] != want[i] {
			t.Fatalf("observation %d: want %q got %q", i, want[i], observer.routes[i])
		}
	}
}
