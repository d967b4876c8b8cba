package advisor

import (
	"fmt"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
)

type PerformanceType string

const (
	PerformanceShame  PerformanceType = "performance_shame"
	PerformancePraise PerformanceType = "performance_praise"
)

// PerformanceReport compares a team's score with the gameweek average.
// Deficit is set for shame reports, Surplus for praise reports.
type PerformanceReport struct {
	Type         PerformanceType
	Gameweek     int
	TeamPoints   int
	AverageScore int
	Deficit      int
	Surplus      int
	Message      string
	Shamed       bool
}

// EvaluatePerformance compares the team against the last finished gameweek.
// The bool is false when there is not enough data yet.
func EvaluatePerformance(history []fpl.HistoryEntry, finished []fpl.Event) (PerformanceReport, bool) {
	if len(finished) == 0 {
		return PerformanceReport{}, false
	}
	target := finished[0]
	for _, event := range finished[1:] {
		if event.ID > target.ID {
			target = event
		}
	}

	entry, ok := findHistoryEntry(history, target.ID)
	if !ok {
		return PerformanceReport{}, false
	}

	report := PerformanceReport{
		Gameweek:     target.ID,
		TeamPoints:   entry.Points,
		AverageScore: target.AverageEntryScore,
	}
	if entry.Points < target.AverageEntryScore {
		report.Type = PerformanceShame
		report.Deficit = target.AverageEntryScore - entry.Points
		report.Shamed = true
		report.Message = fmt.Sprintf(
			"🔥 YIKES! You scored %d points in GW%d, but the average was %d. You're %d points below average! Get it together!",
			entry.Points, target.ID, target.AverageEntryScore, report.Deficit,
		)
		return report, true
	}

	report.Type = PerformancePraise
	report.Surplus = entry.Points - target.AverageEntryScore
	report.Message = fmt.Sprintf(
		"🎯 Not bad! You scored %d points in GW%d, which is %d above average.",
		entry.Points, target.ID, report.Surplus,
	)
	return report, true
}

func findHistoryEntry(history []fpl.HistoryEntry, eventID int) (fpl.HistoryEntry, bool) {
	for _, entry := range history {
		if entry.EventID == eventID {
			return entry, true
		}
	}
	return fpl.HistoryEntry{}, false
}
