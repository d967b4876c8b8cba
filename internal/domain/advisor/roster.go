package advisor

import (
	"sort"
	"strings"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
)

const startingLineupSize = 11

const (
	msgRosterClear   = "No unavailable players in starting XI."
	msgRosterFlagged = "Unavailable player(s) detected in starting XI."
)

var flaggedStatuses = map[fpl.StatusCode]struct{}{
	fpl.StatusDoubtful:  {},
	fpl.StatusInjured:   {},
	fpl.StatusSuspended: {},
}

type FlaggedPlayer struct {
	PlayerID    int64
	Name        string
	StatusCode  fpl.StatusCode
	StatusLabel string
}

// RosterReport is the injury watchdog verdict for one starting XI.
type RosterReport struct {
	OK               bool
	Alert            bool
	Message          string
	Notification     string
	Flagged          []FlaggedPlayer
	UnavailableCount int
	Gameweek         int
}

// RosterUnavailable is the report returned when the lineup could not be evaluated.
func RosterUnavailable(message string) RosterReport {
	return RosterReport{
		OK:      false,
		Message: message,
		Flagged: []FlaggedPlayer{},
	}
}

// EvaluateRoster flags starters whose status is doubtful, injured or suspended.
// Players missing from the index are skipped so partial upstream data still yields a report.
func EvaluateRoster(picks []fpl.Pick, index PlayerIndex) RosterReport {
	lineup := append([]fpl.Pick(nil), picks...)
	sort.SliceStable(lineup, func(i, j int) bool { return lineup[i].Position < lineup[j].Position })
	if len(lineup) > startingLineupSize {
		lineup = lineup[:startingLineupSize]
	}

	flagged := make([]FlaggedPlayer, 0)
	for _, pick := range lineup {
		p, ok := index[pick.PlayerID]
		if !ok {
			continue
		}
		if _, bad := flaggedStatuses[p.Status]; !bad {
			continue
		}
		flagged = append(flagged, FlaggedPlayer{
			PlayerID:    p.ID,
			Name:        p.WebName,
			StatusCode:  p.Status,
			StatusLabel: p.Status.Label(),
		})
	}

	report := RosterReport{
		OK:               true,
		Alert:            len(flagged) > 0,
		Flagged:          flagged,
		UnavailableCount: len(flagged),
		Message:          msgRosterClear,
	}
	if report.Alert {
		names := make([]string, 0, len(flagged))
		for _, item := range flagged {
			names = append(names, item.Name)
		}
		report.Message = msgRosterFlagged
		report.Notification = "⚠️ ALERT: " + strings.Join(names, ", ") + " will likely not play this gameweek."
	}

	return report
}
