package fpl

import "github.com/shopspring/decimal"

// StatusCode is the availability flag the FPL API attaches to every player.
type StatusCode string

const (
	StatusAvailable   StatusCode = "a"
	StatusDoubtful    StatusCode = "d"
	StatusInjured     StatusCode = "i"
	StatusSuspended   StatusCode = "s"
	StatusUnavailable StatusCode = "u"
	StatusNotInSquad  StatusCode = "n"
)

var statusLabels = map[StatusCode]string{
	StatusAvailable:   "Available",
	StatusDoubtful:    "Doubtful",
	StatusInjured:     "Injured",
	StatusSuspended:   "Suspended",
	StatusUnavailable: "Unavailable",
	StatusNotInSquad:  "Not in squad",
}

// Label returns a human readable status, falling back to the raw code.
func (s StatusCode) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ChipTripleCaptain is the chip code used in entry history.
const ChipTripleCaptain = "3xc"

// Player is one element of the bootstrap snapshot.
type Player struct {
	ID                  int64
	WebName             string
	TeamID              int64
	Status              StatusCode
	Form                decimal.Decimal
	ExpectedPointsNext  decimal.NullDecimal
	ChanceOfPlayingNext *int
}

// Event is one gameweek.
type Event struct {
	ID                int
	IsCurrent         bool
	IsNext            bool
	Finished          bool
	AverageEntryScore int
}

// Pick is one squad slot of a team for an event. Positions 1-11 start, 12-15 are bench.
type Pick struct {
	PlayerID int64
	Position int
}

// Fixture is one real-world match. EventID is zero while the match is unscheduled.
type Fixture struct {
	EventID    int
	HomeTeamID int64
	AwayTeamID int64
}

type ChipUsage struct {
	Name    string
	EventID int
}

type HistoryEntry struct {
	EventID int
	Points  int
}

// Bootstrap is the static snapshot of all players and events.
type Bootstrap struct {
	Events  []Event
	Players []Player
}

// History holds per-gameweek points and chip usage of one team.
type History struct {
	Current []HistoryEntry
	Chips   []ChipUsage
}

// Entry is the public summary of a team. Ranks are nil before the first deadline.
type Entry struct {
	ID              int64
	PlayerFirstName string
	PlayerLastName  string
	TeamName        string
	OverallPoints   int
	OverallRank     *int
	EventRank       *int
	TotalTransfers  int
}

func (e Entry) ManagerName() string {
	switch {
	case e.PlayerFirstName == "":
		return e.PlayerLastName
	case e.PlayerLastName == "":
		return e.PlayerFirstName
	default:
		return e.PlayerFirstName + " " + e.PlayerLastName
	}
}
