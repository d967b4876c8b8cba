package fpl

import (
	domain "github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/shopspring/decimal"
)

// Upstream documents keep only the fields the advisors read.

type bootstrapDocument struct {
	Events   []eventItem   `json:"events"`
	Elements []elementItem `json:"elements"`
}

type eventItem struct {
	ID                int  `json:"id"`
	IsCurrent         bool `json:"is_current"`
	IsNext            bool `json:"is_next"`
	Finished          bool `json:"finished"`
	AverageEntryScore int  `json:"average_entry_score"`
}

// FPL sends form and ep_next as quoted decimals ("6.0"); decimal accepts both forms.
type elementItem struct {
	ID                       int64               `json:"id"`
	WebName                  string              `json:"web_name"`
	Team                     int64               `json:"team"`
	Status                   string              `json:"status"`
	Form                     decimal.Decimal     `json:"form"`
	EPNext                   decimal.NullDecimal `json:"ep_next"`
	ChanceOfPlayingNextRound *int                `json:"chance_of_playing_next_round"`
}

type picksDocument struct {
	Picks []pickItem `json:"picks"`
}

type pickItem struct {
	Element  int64 `json:"element"`
	Position int   `json:"position"`
}

type historyDocument struct {
	Current []historyItem `json:"current"`
	Chips   []chipItem    `json:"chips"`
}

type historyItem struct {
	Event  int `json:"event"`
	Points int `json:"points"`
}

type chipItem struct {
	Name  string `json:"name"`
	Event int    `json:"event"`
}

type fixtureItem struct {
	Event *int  `json:"event"`
	TeamH int64 `json:"team_h"`
	TeamA int64 `json:"team_a"`
}

type entryDocument struct {
	ID                         int64  `json:"id"`
	PlayerFirstName            string `json:"player_first_name"`
	PlayerLastName             string `json:"player_last_name"`
	Name                       string `json:"name"`
	SummaryOverallPoints       int    `json:"summary_overall_points"`
	SummaryOverallRank         *int   `json:"summary_overall_rank"`
	SummaryEventRank           *int   `json:"summary_event_rank"`
	LastDeadlineTotalTransfers int    `json:"last_deadline_total_transfers"`
}

func (d bootstrapDocument) toDomain() domain.Bootstrap {
	out := domain.Bootstrap{
		Events:  make([]domain.Event, 0, len(d.Events)),
		Players: make([]domain.Player, 0, len(d.Elements)),
	}
	for _, item := range d.Events {
		out.Events = append(out.Events, domain.Event{
			ID:                item.ID,
			IsCurrent:         item.IsCurrent,
			IsNext:            item.IsNext,
			Finished:          item.Finished,
			AverageEntryScore: item.AverageEntryScore,
		})
	}
	for _, item := range d.Elements {
		if item.ID <= 0 {
			continue
		}
		out.Players = append(out.Players, domain.Player{
			ID:                  item.ID,
			WebName:             item.WebName,
			TeamID:              item.Team,
			Status:              domain.StatusCode(item.Status),
			Form:                item.Form,
			ExpectedPointsNext:  item.EPNext,
			ChanceOfPlayingNext: item.ChanceOfPlayingNextRound,
		})
	}
	return out
}

func (d picksDocument) toDomain() []domain.Pick {
	out := make([]domain.Pick, 0, len(d.Picks))
	for _, item := range d.Picks {
		out = append(out, domain.Pick{PlayerID: item.Element, Position: item.Position})
	}
	return out
}

func (d historyDocument) toDomain() domain.History {
	out := domain.History{
		Current: make([]domain.HistoryEntry, 0, len(d.Current)),
		Chips:   make([]domain.ChipUsage, 0, len(d.Chips)),
	}
	for _, item := range d.Current {
		out.Current = append(out.Current, domain.HistoryEntry{EventID: item.Event, Points: item.Points})
	}
	for _, item := range d.Chips {
		out.Chips = append(out.Chips, domain.ChipUsage{Name: item.Name, EventID: item.Event})
	}
	return out
}

func fixturesToDomain(items []fixtureItem) []domain.Fixture {
	out := make([]domain.Fixture, 0, len(items))
	for _, item := range items {
		fx := domain.Fixture{HomeTeamID: item.TeamH, AwayTeamID: item.TeamA}
		if item.Event != nil {
			fx.EventID = *item.Event
		}
		out = append(out, fx)
	}
	return out
}

func (d entryDocument) toDomain() domain.Entry {
	return domain.Entry{
		ID:              d.ID,
		PlayerFirstName: d.PlayerFirstName,
		PlayerLastName:  d.PlayerLastName,
		TeamName:        d.Name,
		OverallPoints:   d.SummaryOverallPoints,
		OverallRank:     d.SummaryOverallRank,
		EventRank:       d.SummaryEventRank,
		TotalTransfers:  d.LastDeadlineTotalTransfers,
	}
}
