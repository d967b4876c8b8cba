package usecase

import (
	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func testBootstrap() fpl.Bootstrap {
	return fpl.Bootstrap{
		Events: []fpl.Event{
			{ID: 23, Finished: true, AverageEntryScore: 55},
			{ID: 24, IsCurrent: true, Finished: true, AverageEntryScore: 50},
			{ID: 25, IsNext: true},
		},
		Players: []fpl.Player{
			{ID: 10, WebName: "Salah", TeamID: 7, Status: fpl.StatusAvailable, Form: decimal.RequireFromString("6.0"), ChanceOfPlayingNext: intPtr(100)},
			{ID: 11, WebName: "Watkins", TeamID: 3, Status: fpl.StatusInjured, Form: decimal.RequireFromString("0.0"), ChanceOfPlayingNext: intPtr(0)},
			{ID: 12, WebName: "Saka", TeamID: 1, Status: fpl.StatusDoubtful, Form: decimal.RequireFromString("4.0"), ChanceOfPlayingNext: intPtr(75)},
			{ID: 13, WebName: "Raya", TeamID: 1, Status: fpl.StatusAvailable, Form: decimal.RequireFromString("3.0")},
		},
	}
}

func testPicks() []fpl.Pick {
	return []fpl.Pick{
		{PlayerID: 13, Position: 1},
		{PlayerID: 10, Position: 2},
		{PlayerID: 11, Position: 3},
		{PlayerID: 12, Position: 4},
	}
}

func testFixtures() []fpl.Fixture {
	return []fpl.Fixture{
		{EventID: 25, HomeTeamID: 7, AwayTeamID: 1},
		{EventID: 25, HomeTeamID: 2, AwayTeamID: 7},
		{EventID: 26, HomeTeamID: 3, AwayTeamID: 4},
	}
}

func testHistory(lastPoints int) fpl.History {
	return fpl.History{
		Current: []fpl.HistoryEntry{{EventID: 23, Points: 70}, {EventID: 24, Points: lastPoints}},
		Chips:   []fpl.ChipUsage{{Name: fpl.ChipTripleCaptain, EventID: 5}},
	}
}
