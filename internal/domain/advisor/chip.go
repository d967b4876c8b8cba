package advisor

import (
	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/shopspring/decimal"
)

// SecondHalfStartEvent is the first gameweek of the second chip window.
const SecondHalfStartEvent = 20

const (
	ReasonUsedFirstHalf  = "Triple Captain already used in the first half of the season."
	ReasonUsedSecondHalf = "Triple Captain already used in the second half of the season."
	ReasonNoDoubleWeek   = "Save it. No Double Gameweek detected."
	ReasonOutOfForm      = "Double Gameweek players are out of form."
)

var (
	formThreshold           = decimal.NewFromInt(5)
	expectedPointsThreshold = decimal.NewFromInt(6)
)

// ChipAdvice is the triple captain verdict for the next gameweek.
type ChipAdvice struct {
	Recommend bool
	Player    string
	PlayerID  int64
	Gameweek  int
	Reason    string
}

func ChipUnavailable(reason string) ChipAdvice {
	return ChipAdvice{Reason: reason}
}

// EvaluateChip decides whether triple captain should be played in nextEventID.
func EvaluateChip(usage []fpl.ChipUsage, nextEventID int, fixtures []fpl.Fixture, picks []fpl.Pick, index PlayerIndex) ChipAdvice {
	advice := ChipAdvice{Gameweek: nextEventID}

	if reason, ok := chipAvailable(usage, nextEventID); !ok {
		advice.Reason = reason
		return advice
	}

	doubles := DoubleFixtureTeams(fixtures, nextEventID)
	if len(doubles) == 0 {
		advice.Reason = ReasonNoDoubleWeek
		return advice
	}

	var (
		best      fpl.Player
		bestScore decimal.Decimal
		found     bool
	)
	for _, pick := range picks {
		p, ok := index[pick.PlayerID]
		if !ok {
			continue
		}
		if _, double := doubles[p.TeamID]; !double {
			continue
		}
		if !isCandidate(p) {
			continue
		}

		score := candidateScore(p)
		if !found || score.GreaterThan(bestScore) || (score.Equal(bestScore) && p.ID < best.ID) {
			best, bestScore, found = p, score, true
		}
	}

	if !found {
		advice.Reason = ReasonOutOfForm
		return advice
	}

	advice.Recommend = true
	advice.Player = best.WebName
	advice.PlayerID = best.ID
	advice.Reason = "ACTIVATE NOW! " + best.WebName + " plays twice and is on fire!"
	return advice
}

// chipAvailable applies the two usage windows. Usage before the second window never
// blocks a recommendation inside it.
func chipAvailable(usage []fpl.ChipUsage, nextEventID int) (string, bool) {
	if nextEventID < SecondHalfStartEvent {
		for _, chip := range usage {
			if chip.Name == fpl.ChipTripleCaptain {
				return ReasonUsedFirstHalf, false
			}
		}
		return "", true
	}

	for _, chip := range usage {
		if chip.Name == fpl.ChipTripleCaptain && chip.EventID >= SecondHalfStartEvent {
			return ReasonUsedSecondHalf, false
		}
	}
	return "", true
}

// DoubleFixtureTeams returns team ids that play more than once in eventID.
func DoubleFixtureTeams(fixtures []fpl.Fixture, eventID int) map[int64]struct{} {
	counts := make(map[int64]int)
	for _, fx := range fixtures {
		if fx.EventID != eventID {
			continue
		}
		counts[fx.HomeTeamID]++
		counts[fx.AwayTeamID]++
	}

	out := make(map[int64]struct{})
	for teamID, count := range counts {
		if count > 1 {
			out[teamID] = struct{}{}
		}
	}
	return out
}

// isCandidate treats an unknown chance of playing as fully fit.
func isCandidate(p fpl.Player) bool {
	if p.ChanceOfPlayingNext != nil && *p.ChanceOfPlayingNext != 100 {
		return false
	}
	if p.Form.GreaterThan(formThreshold) {
		return true
	}
	return p.ExpectedPointsNext.Valid && p.ExpectedPointsNext.Decimal.GreaterThan(expectedPointsThreshold)
}

func candidateScore(p fpl.Player) decimal.Decimal {
	if !p.ExpectedPointsNext.Valid {
		return p.Form
	}
	return p.Form.Add(p.ExpectedPointsNext.Decimal)
}
