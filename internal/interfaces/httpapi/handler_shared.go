package httpapi

import (
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/advisor"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	"github.com/riskibarqy/fpl-annoyer/internal/usecase"
	"github.com/shopspring/decimal"
)

type flaggedPlayerDTO struct {
	PlayerID    int64  `json:"player_id"`
	Name        string `json:"name"`
	StatusCode  string `json:"status_code"`
	StatusLabel string `json:"status_label"`
}

type rosterReportDTO struct {
	OK               bool               `json:"ok"`
	Alert            bool               `json:"alert"`
	Message          string             `json:"message,omitempty"`
	Notification     string             `json:"notification,omitempty"`
	FlaggedPlayers   []flaggedPlayerDTO `json:"flagged_players"`
	UnavailableCount int                `json:"unavailable_count"`
	Gameweek         int                `json:"gameweek,omitempty"`
}

type performanceReportDTO struct {
	Type         string `json:"type"`
	Gameweek     int    `json:"gw"`
	TeamPoints   int    `json:"team_points"`
	AverageScore int    `json:"average_score"`
	Deficit      *int   `json:"deficit,omitempty"`
	Surplus      *int   `json:"surplus,omitempty"`
	Message      string `json:"message"`
	Shamed       bool   `json:"shamed"`
}

type chipAdviceDTO struct {
	Recommend bool   `json:"recommend"`
	Player    string `json:"player,omitempty"`
	PlayerID  int64  `json:"player_id,omitempty"`
	Gameweek  int    `json:"gameweek,omitempty"`
	Reason    string `json:"reason"`
}

type teamVerificationDTO struct {
	Valid bool   `json:"valid"`
	Name  string `json:"name,omitempty"`
}

type teamInfoDTO struct {
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	ManagerName    string `json:"manager_name"`
	OverallPoints  int    `json:"overall_points"`
	OverallRank    *int   `json:"overall_rank"`
	EventRank      *int   `json:"event_rank"`
	TotalTransfers int    `json:"total_transfers"`
}

type digestDTO struct {
	TeamID         int64                 `json:"team_id"`
	TeamName       string                `json:"team_name"`
	ManagerName    string                `json:"manager_name"`
	AnnoyanceLevel int                   `json:"annoyance_level"`
	Message        string                `json:"message"`
	Rank           *int                  `json:"rank"`
	Roster         rosterReportDTO       `json:"watchdog"`
	Performance    *performanceReportDTO `json:"shame,omitempty"`
	TripleCaptain  chipAdviceDTO         `json:"triple_captain"`
}

type itemDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type createItemRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
}

func rosterReportToDTO(v advisor.RosterReport) rosterReportDTO {
	flagged := make([]flaggedPlayerDTO, 0, len(v.Flagged))
	for _, p := range v.Flagged {
		flagged = append(flagged, flaggedPlayerDTO{
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			StatusCode:  string(p.StatusCode),
			StatusLabel: p.StatusLabel,
		})
	}
	return rosterReportDTO{
		OK:               v.OK,
		Alert:            v.Alert,
		Message:          v.Message,
		Notification:     v.Notification,
		FlaggedPlayers:   flagged,
		UnavailableCount: v.UnavailableCount,
		Gameweek:         v.Gameweek,
	}
}

func performanceReportToDTO(v advisor.PerformanceReport) performanceReportDTO {
	out := performanceReportDTO{
		Type:         string(v.Type),
		Gameweek:     v.Gameweek,
		TeamPoints:   v.TeamPoints,
		AverageScore: v.AverageScore,
		Message:      v.Message,
		Shamed:       v.Shamed,
	}
	if v.Type == advisor.PerformanceShame {
		deficit := v.Deficit
		out.Deficit = &deficit
	} else {
		surplus := v.Surplus
		out.Surplus = &surplus
	}
	return out
}

func chipAdviceToDTO(v advisor.ChipAdvice) chipAdviceDTO {
	return chipAdviceDTO{
		Recommend: v.Recommend,
		Player:    v.Player,
		PlayerID:  v.PlayerID,
		Gameweek:  v.Gameweek,
		Reason:    v.Reason,
	}
}

func teamInfoToDTO(v fpl.Entry) teamInfoDTO {
	return teamInfoDTO{
		TeamID:         v.ID,
		TeamName:       v.TeamName,
		ManagerName:    v.ManagerName(),
		OverallPoints:  v.OverallPoints,
		OverallRank:    v.OverallRank,
		EventRank:      v.EventRank,
		TotalTransfers: v.TotalTransfers,
	}
}

func digestToDTO(v usecase.Digest) digestDTO {
	out := digestDTO{
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		ManagerName:    v.ManagerName,
		AnnoyanceLevel: v.AnnoyanceLevel,
		Message:        v.Message,
		Rank:           v.OverallRank,
		Roster:         rosterReportToDTO(v.Roster),
		TripleCaptain:  chipAdviceToDTO(v.Chip),
	}
	if v.Performance != nil {
		perf := performanceReportToDTO(*v.Performance)
		out.Performance = &perf
	}
	return out
}

func itemToDTO(v item.Item) itemDTO {
	return itemDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price.InexactFloat64(),
		CreatedAt:   v.CreatedAt.UTC(),
	}
}
