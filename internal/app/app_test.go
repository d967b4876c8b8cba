package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/config"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                   config.EnvDev,
		ServiceName:              "fpl-annoyer-api",
		HTTPAddr:                 ":0",
		ReadTimeout:              time.Second,
		WriteTimeout:             time.Second,
		CORSAllowedOrigins:       []string{"*"},
		FPLBaseURL:               "http://127.0.0.1:1",
		FPLTimeout:               time.Second,
		FPLCircuitEnabled:        true,
		FPLCircuitFailureCount:   5,
		FPLCircuitOpenTimeout:    time.Second,
		FPLCircuitHalfOpenMaxReq: 1,
		CacheEnabled:             true,
		CacheTTL:                 time.Minute,
		DigestWorkers:            2,
		ItemStore:                config.ItemStoreMemory,
		MetricsEnabled:           true,
	}
}

func TestNewHTTPServer_MemoryStore(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() {
		if err := srv.Release(); err != nil {
			t.Fatalf("close server: %v", err)
		}
	})

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"Scarf","price":3}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics endpoint, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "fpl_annoyer_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
}

func TestNewHTTPServer_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false
	cfg.CacheEnabled = false

	srv, err := NewHTTPServer(cfg, nil)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	defer srv.Release()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics to be absent, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
