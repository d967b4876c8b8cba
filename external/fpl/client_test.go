package fpl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/resilience"
	"github.com/riskibarqy/fpl-annoyer/internal/usecase"
)

const bootstrapPayload = `{
  "events": [
    {"id": 24, "is_current": true, "is_next": false, "finished": true, "average_entry_score": 50},
    {"id": 25, "is_current": false, "is_next": true, "finished": false, "average_entry_score": 0}
  ],
  "elements": [
    {"id": 10, "web_name": "Salah", "team": 7, "status": "a", "form": "6.5", "ep_next": "7.2", "chance_of_playing_next_round": null},
    {"id": 11, "web_name": "Watkins", "team": 3, "status": "d", "form": "1.0", "ep_next": null, "chance_of_playing_next_round": 50}
  ]
}`

type recordingObserver struct {
	outcomes []string
}

func (o *recordingObserver) ObserveFetch(_ string, outcome string, _ time.Duration) {
	o.outcomes = append(o.outcomes, outcome)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, observer FetchObserver) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/",
		Observer:   observer,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
}

func TestClient_FetchBootstrap(t *testing.T) {
	observer := &recordingObserver{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bootstrap-static/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("expected user agent header")
		}
		_, _ = w.Write([]byte(bootstrapPayload))
	}, observer)

	got, err := client.FetchBootstrap(context.Background())
	if err != nil {
		t.Fatalf("fetch bootstrap: %v", err)
	}
	if len(got.Events) != 2 || !got.Events[0].IsCurrent || got.Events[0].AverageEntryScore != 50 {
		t.Fatalf("unexpected events: %+v", got.Events)
	}
	if len(got.Players) != 2 {
		t.Fatalf("unexpected players: %+v", got.Players)
	}

	salah := got.Players[0]
	if salah.Form.String() != "6.5" || !salah.ExpectedPointsNext.Valid || salah.ExpectedPointsNext.Decimal.String() != "7.2" {
		t.Fatalf("unexpected decimals: form=%s ep=%v", salah.Form, salah.ExpectedPointsNext)
	}
	if salah.ChanceOfPlayingNext != nil {
		t.Fatalf("expected nil chance, got %d", *salah.ChanceOfPlayingNext)
	}

	watkins := got.Players[1]
	if watkins.Status != fpl.StatusDoubtful || watkins.ExpectedPointsNext.Valid {
		t.Fatalf("unexpected watkins: %+v", watkins)
	}
	if watkins.ChanceOfPlayingNext == nil || *watkins.ChanceOfPlayingNext != 50 {
		t.Fatalf("unexpected chance: %v", watkins.ChanceOfPlayingNext)
	}
	if len(observer.outcomes) != 1 || observer.outcomes[0] != OutcomeSuccess {
		t.Fatalf("unexpected observations: %v", observer.outcomes)
	}
}

func TestClient_FetchTeamDocuments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/entry/42/":
			_, _ = w.Write([]byte(`{"id": 42, "player_first_name": "Ana", "player_last_name": "Lee", "name": "Lee Side", "summary_overall_points": 1200, "summary_overall_rank": 1500, "summary_event_rank": null, "last_deadline_total_transfers": 12}`))
		case "/entry/42/event/24/picks/":
			_, _ = w.Write([]byte(`{"picks": [{"element": 10, "position": 2}, {"element": 11, "position": 1}]}`))
		case "/entry/42/history/":
			_, _ = w.Write([]byte(`{"current": [{"event": 23, "points": 61}, {"event": 24, "points": 40}], "chips": [{"name": "3xc", "event": 5}]}`))
		case "/fixtures/":
			_, _ = w.Write([]byte(`[{"event": 25, "team_h": 7, "team_a": 1}, {"event": null, "team_h": 3, "team_a": 4}]`))
		default:
			http.NotFound(w, r)
		}
	}, nil)
	ctx := context.Background()

	entry, err := client.FetchEntry(ctx, 42)
	if err != nil {
		t.Fatalf("fetch entry: %v", err)
	}
	if entry.TeamName != "Lee Side" || entry.ManagerName() != "Ana Lee" || entry.OverallRank == nil || *entry.OverallRank != 1500 || entry.EventRank != nil {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	picks, err := client.FetchPicks(ctx, 42, 24)
	if err != nil {
		t.Fatalf("fetch picks: %v", err)
	}
	if len(picks) != 2 || picks[0].PlayerID != 10 || picks[0].Position != 2 {
		t.Fatalf("unexpected picks: %+v", picks)
	}

	history, err := client.FetchHistory(ctx, 42)
	if err != nil {
		t.Fatalf("fetch history: %v", err)
	}
	if len(history.Current) != 2 || history.Current[1].Points != 40 || len(history.Chips) != 1 || history.Chips[0].Name != fpl.ChipTripleCaptain {
		t.Fatalf("unexpected history: %+v", history)
	}

	fixtures, err := client.FetchFixtures(ctx)
	if err != nil {
		t.Fatalf("fetch fixtures: %v", err)
	}
	if len(fixtures) != 2 || fixtures[0].EventID != 25 || fixtures[1].EventID != 0 {
		t.Fatalf("unexpected fixtures: %+v", fixtures)
	}
}

func TestClient_NotFoundIsUnavailableAndNotFound(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}, nil)

	for i := 0; i < 3; i++ {
		_, err := client.FetchEntry(context.Background(), 999)
		if !errors.Is(err, usecase.ErrDependencyUnavailable) || !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected unavailable+not found, got %v", err)
		}
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("not found must not open the breaker, upstream calls=%d", got)
	}
}

func TestClient_ServerErrorsOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	observer := &recordingObserver{}
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}, observer)

	for i := 0; i < 3; i++ {
		_, err := client.FetchFixtures(context.Background())
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected dependency unavailable, got %v", i, err)
		}
		if errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("attempt %d: unexpected not found", i)
		}
	}

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected breaker to stop the third call, upstream calls=%d", got)
	}
	want := []string{OutcomeFailure, OutcomeFailure, OutcomeRejected}
	if len(observer.outcomes) != len(want) {
		t.Fatalf("outcomes=%v want=%v", observer.outcomes, want)
	}
	for i := range want {
		if observer.outcomes[i] != want[i] {
			t.Fatalf("outcomes=%v want=%v", observer.outcomes, want)
		}
	}
}

func TestClient_MalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"events": "nope"`))
	}, nil)

	_, err := client.FetchBootstrap(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}
