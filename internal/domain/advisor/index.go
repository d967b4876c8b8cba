package advisor

import (
	"sort"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
)

// PlayerIndex maps player ids to bootstrap players.
type PlayerIndex map[int64]fpl.Player

// EventFlag selects which gameweek FindEvent looks for.
type EventFlag int

const (
	EventCurrent EventFlag = iota
	EventNext
)

func BuildPlayerIndex(players []fpl.Player) PlayerIndex {
	index := make(PlayerIndex, len(players))
	for _, p := range players {
		index[p.ID] = p
	}
	return index
}

// FindEvent returns the event carrying flag. The bool is false once no event has it,
// e.g. after the final gameweek.
func FindEvent(events []fpl.Event, flag EventFlag) (fpl.Event, bool) {
	for _, event := range events {
		switch flag {
		case EventCurrent:
			if event.IsCurrent {
				return event, true
			}
		case EventNext:
			if event.IsNext {
				return event, true
			}
		}
	}
	return fpl.Event{}, false
}

// FinishedEvents returns finished events ordered by id.
func FinishedEvents(events []fpl.Event) []fpl.Event {
	out := make([]fpl.Event, 0, len(events))
	for _, event := range events {
		if event.Finished {
			out = append(out, event)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
