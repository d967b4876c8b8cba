package advisor

import (
	"testing"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
)

func TestEvaluatePerformance(t *testing.T) {
	finished := []fpl.Event{
		{ID: 9, Finished: true, AverageEntryScore: 61},
		{ID: 10, Finished: true, AverageEntryScore: 50},
	}

	tests := []struct {
		name        string
		points      int
		wantType    PerformanceType
		wantDeficit int
		wantSurplus int
		wantShamed  bool
	}{
		{name: "below average", points: 40, wantType: PerformanceShame, wantDeficit: 10, wantShamed: true},
		{name: "above average", points: 60, wantType: PerformancePraise, wantSurplus: 10},
		{name: "equal to average", points: 50, wantType: PerformancePraise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []fpl.HistoryEntry{{EventID: 9, Points: 99}, {EventID: 10, Points: tt.points}}

			report, ok := EvaluatePerformance(history, finished)
			if !ok {
				t.Fatalf("expected report")
			}
			if report.Gameweek != 10 || report.TeamPoints != tt.points || report.AverageScore != 50 {
				t.Fatalf("unexpected report header: %+v", report)
			}
			if report.Type != tt.wantType || report.Shamed != tt.wantShamed {
				t.Fatalf("type=%s shamed=%v", report.Type, report.Shamed)
			}
			if report.Deficit != tt.wantDeficit || report.Surplus != tt.wantSurplus {
				t.Fatalf("deficit=%d surplus=%d", report.Deficit, report.Surplus)
			}
		})
	}
}

func TestEvaluatePerformance_Messages(t *testing.T) {
	finished := []fpl.Event{{ID: 20, Finished: true, AverageEntryScore: 52}}

	shame, _ := EvaluatePerformance([]fpl.HistoryEntry{{EventID: 20, Points: 31}}, finished)
	want := "🔥 YIKES! You scored 31 points in GW20, but the average was 52. You're 21 points below average! Get it together!"
	if shame.Message != want {
		t.Fatalf("shame message=%q want=%q", shame.Message, want)
	}

	praise, _ := EvaluatePerformance([]fpl.HistoryEntry{{EventID: 20, Points: 58}}, finished)
	want = "🎯 Not bad! You scored 58 points in GW20, which is 6 above average."
	if praise.Message != want {
		t.Fatalf("praise message=%q want=%q", praise.Message, want)
	}
}

func TestEvaluatePerformance_Absent(t *testing.T) {
	if _, ok := EvaluatePerformance([]fpl.HistoryEntry{{EventID: 1, Points: 10}}, nil); ok {
		t.Fatalf("expected absent report without finished events")
	}

	finished := []fpl.Event{{ID: 4, Finished: true, AverageEntryScore: 40}}
	if _, ok := EvaluatePerformance([]fpl.HistoryEntry{{EventID: 3, Points: 10}}, finished); ok {
		t.Fatalf("expected absent report when team has no entry for the last finished event")
	}
}

func TestFinishedEvents(t *testing.T) {
	events := []fpl.Event{
		{ID: 3, Finished: true},
		{ID: 1, Finished: true},
		{ID: 4, IsCurrent: true},
		{ID: 2, Finished: true},
	}

	got := FinishedEvents(events)
	if len(got) != 3 || got[0].ID != 1 || got[2].ID != 3 {
		t.Fatalf("unexpected finished events: %+v", got)
	}
}

func TestFindEvent(t *testing.T) {
	events := []fpl.Event{{ID: 1, Finished: true}, {ID: 2, IsCurrent: true}, {ID: 3, IsNext: true}}

	if ev, ok := FindEvent(events, EventCurrent); !ok || ev.ID != 2 {
		t.Fatalf("current event=%+v ok=%v", ev, ok)
	}
	if ev, ok := FindEvent(events, EventNext); !ok || ev.ID != 3 {
		t.Fatalf("next event=%+v ok=%v", ev, ok)
	}
	if _, ok := FindEvent([]fpl.Event{{ID: 38, Finished: true}}, EventNext); ok {
		t.Fatalf("expected no next event after the season")
	}
}
