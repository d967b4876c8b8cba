package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/advisor"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	MsgChipFetchFailed = "Could not fetch advice."
	MsgNoNextEvent     = "No upcoming gameweek to play the chip in."
)

// ChipService advises on playing triple captain in the next gameweek.
type ChipService struct {
	source fpl.Source
	logger *logging.Logger
}

func NewChipService(source fpl.Source, logger *logging.Logger) *ChipService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChipService{source: source, logger: logger}
}

// Advise evaluates the squad picked for the current gameweek against the
// fixtures of the next one.
func (s *ChipService) Advise(ctx context.Context, teamID int64) (advisor.ChipAdvice, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChipService.Advise")
	defer span.End()

	if err := validateTeamID(teamID); err != nil {
		return advisor.ChipAdvice{}, err
	}

	var (
		bootstrap fpl.Bootstrap
		history   fpl.History
		fixtures  []fpl.Fixture
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		bootstrap, err = s.source.FetchBootstrap(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		history, err = s.source.FetchHistory(ctx, teamID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		fixtures, err = s.source.FetchFixtures(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		s.logger.WarnContext(ctx, "chip advice fetch failed", "team_id", teamID, "error", err)
		return advisor.ChipUnavailable(MsgChipFetchFailed), nil
	}

	next, ok := advisor.FindEvent(bootstrap.Events, advisor.EventNext)
	if !ok {
		s.logger.InfoContext(ctx, "chip advice skipped", "team_id", teamID, "error", fmt.Errorf("%w: next", ErrNoEvent))
		return advisor.ChipUnavailable(MsgNoNextEvent), nil
	}

	// Without a current gameweek the squad registered for the next one is used.
	pickEvent := next.ID
	if current, ok := advisor.FindEvent(bootstrap.Events, advisor.EventCurrent); ok {
		pickEvent = current.ID
	}

	picks, err := s.source.FetchPicks(ctx, teamID, pickEvent)
	if err != nil {
		s.logger.WarnContext(ctx, "chip advice picks fetch failed", "team_id", teamID, "event", pickEvent, "error", err)
		return advisor.ChipUnavailable(MsgChipFetchFailed), nil
	}

	return advisor.EvaluateChip(history.Chips, next.ID, fixtures, picks, advisor.BuildPlayerIndex(bootstrap.Players)), nil
}
