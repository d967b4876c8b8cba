package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/resilience"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics()

	m.ObserveHTTP(http.MethodGet, "/watchdog/{teamID}", http.StatusOK, 20*time.Millisecond)
	m.ObserveFetch("bootstrap", "success", 150*time.Millisecond)
	m.ObserveFetch("bootstrap", "failure", time.Second)
	m.CacheHit("bootstrap")
	m.CacheHit("bootstrap")
	m.CacheMiss("fixtures")
	m.BreakerStateChanged("fpl", resilience.CircuitStateClosed, resilience.CircuitStateOpen)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/watchdog/{teamID}", "200")); got != 1 {
		t.Fatalf("unexpected http counter: %v", got)
	}
	if got := testutil.ToFloat64(m.fetches.WithLabelValues("bootstrap", "failure")); got != 1 {
		t.Fatalf("unexpected fetch failure counter: %v", got)
	}
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("bootstrap", "hit")); got != 2 {
		t.Fatalf("unexpected cache hit counter: %v", got)
	}
	if got := testutil.ToFloat64(m.breakerState.WithLabelValues("fpl", "open")); got != 1 {
		t.Fatalf("unexpected breaker gauge: %v", got)
	}
	if got := testutil.ToFloat64(m.breakerState.WithLabelValues("fpl", "closed")); got != 0 {
		t.Fatalf("unexpected closed gauge: %v", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.CacheMiss("bootstrap")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `fpl_annoyer_cache_lookups_total{result="miss",store="bootstrap"} 1`) {
		t.Fatalf("expected cache metric in output")
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	m.ObserveFetch("entry", "success", time.Millisecond)
	m.CacheHit("x")
	m.CacheMiss("x")
	m.BreakerStateChanged("fpl", resilience.CircuitStateOpen, resilience.CircuitStateClosed)
	if m.Registry() != nil {
		t.Fatalf("expected nil registry")
	}
}
