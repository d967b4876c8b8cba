package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/advisor"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
)

const (
	MsgInjuryFetchFailed = "Could not fetch injury data."
	MsgNoCurrentEvent    = "Could not determine the current gameweek."
)

// WatchdogService flags unavailable starters for the current gameweek.
type WatchdogService struct {
	source fpl.Source
	logger *logging.Logger
}

func NewWatchdogService(source fpl.Source, logger *logging.Logger) *WatchdogService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WatchdogService{source: source, logger: logger}
}

// Check never fails on upstream problems; those come back as OK=false reports.
func (s *WatchdogService) Check(ctx context.Context, teamID int64) (advisor.RosterReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WatchdogService.Check")
	defer span.End()

	if err := validateTeamID(teamID); err != nil {
		return advisor.RosterReport{}, err
	}

	bootstrap, err := s.source.FetchBootstrap(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "watchdog bootstrap fetch failed", "team_id", teamID, "error", err)
		return advisor.RosterUnavailable(MsgInjuryFetchFailed), nil
	}

	current, ok := advisor.FindEvent(bootstrap.Events, advisor.EventCurrent)
	if !ok {
		s.logger.InfoContext(ctx, "watchdog skipped", "team_id", teamID, "error", fmt.Errorf("%w: current", ErrNoEvent))
		return advisor.RosterUnavailable(MsgNoCurrentEvent), nil
	}

	picks, err := s.source.FetchPicks(ctx, teamID, current.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "watchdog picks fetch failed", "team_id", teamID, "event", current.ID, "error", err)
		return advisor.RosterUnavailable(MsgInjuryFetchFailed), nil
	}

	report := advisor.EvaluateRoster(picks, advisor.BuildPlayerIndex(bootstrap.Players))
	report.Gameweek = current.ID
	return report, nil
}
