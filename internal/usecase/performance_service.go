package usecase

import (
	"context"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/advisor"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// PerformanceService compares a team with the last finished gameweek average.
type PerformanceService struct {
	source fpl.Source
	logger *logging.Logger
}

func NewPerformanceService(source fpl.Source, logger *logging.Logger) *PerformanceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PerformanceService{source: source, logger: logger}
}

// Compare returns false when there is nothing to report yet, including
// when the upstream could not be reached.
func (s *PerformanceService) Compare(ctx context.Context, teamID int64) (advisor.PerformanceReport, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Compare")
	defer span.End()

	if err := validateTeamID(teamID); err != nil {
		return advisor.PerformanceReport{}, false, err
	}

	var (
		bootstrap fpl.Bootstrap
		history   fpl.History
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
	if err := p.Wait(); err != nil {
		s.logger.WarnContext(ctx, "performance fetch failed", "team_id", teamID, "error", err)
		return advisor.PerformanceReport{}, false, nil
	}

	report, ok := advisor.EvaluatePerformance(history.Current, advisor.FinishedEvents(bootstrap.Events))
	return report, ok, nil
}
