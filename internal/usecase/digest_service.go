package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/advisor"
	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
)

const (
	defaultDigestWorkers    = 4
	annoyancePerUnavailable = 25
	maxAnnoyanceLevel       = 100

	msgDigestCalm   = "Nothing to moan about this week. Enjoy it while it lasts."
	msgDigestGiveUp = "Delete the app."
)

// Digest bundles every check for one team into a single status.
type Digest struct {
	TeamID         int64
	TeamName       string
	ManagerName    string
	OverallRank    *int
	AnnoyanceLevel int
	Message        string
	Roster         advisor.RosterReport
	Performance    *advisor.PerformanceReport
	Chip           advisor.ChipAdvice
}

// DigestService fans the individual checks out on a shared worker pool.
type DigestService struct {
	teams       *TeamService
	watchdog    *WatchdogService
	performance *PerformanceService
	chips       *ChipService
	pool        *ants.Pool
	logger      *logging.Logger
}

func NewDigestService(
	teams *TeamService,
	watchdog *WatchdogService,
	performance *PerformanceService,
	chips *ChipService,
	workers int,
	logger *logging.Logger,
) (*DigestService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultDigestWorkers
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create digest worker pool: %w", err)
	}

	return &DigestService{
		teams:       teams,
		watchdog:    watchdog,
		performance: performance,
		chips:       chips,
		pool:        pool,
		logger:      logger,
	}, nil
}

func (s *DigestService) Close() {
	s.pool.Release()
}

// Status runs every check for the team. Only a failed team lookup is an
// error; the other checks degrade into their default reports.
func (s *DigestService) Status(ctx context.Context, teamID int64) (Digest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DigestService.Status")
	defer span.End()

	if err := validateTeamID(teamID); err != nil {
		return Digest{}, err
	}

	var (
		entry    fpl.Entry
		entryErr error
		roster   advisor.RosterReport
		perf     advisor.PerformanceReport
		perfOK   bool
		chip     advisor.ChipAdvice
		workers  sync.WaitGroup
		tasks    = []func(){
			func() { entry, entryErr = s.teams.Info(ctx, teamID) },
			func() { roster, _ = s.watchdog.Check(ctx, teamID) },
			func() { perf, perfOK, _ = s.performance.Compare(ctx, teamID) },
			func() { chip, _ = s.chips.Advise(ctx, teamID) },
		}
	)

	for _, task := range tasks {
		workers.Add(1)
		if err := s.pool.Submit(func() {
			defer workers.Done()
			task()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return Digest{}, fmt.Errorf("%w: submit digest task: %v", ErrDependencyUnavailable, err)
		}
	}
	workers.Wait()

	if entryErr != nil {
		return Digest{}, entryErr
	}

	digest := Digest{
		TeamID:      teamID,
		TeamName:    entry.TeamName,
		ManagerName: entry.ManagerName(),
		OverallRank: entry.OverallRank,
		Roster:      roster,
		Chip:        chip,
	}
	if perfOK {
		digest.Performance = &perf
	}
	digest.AnnoyanceLevel = AnnoyanceLevel(roster, digest.Performance)
	digest.Message = digestMessage(digest)

	s.logger.DebugContext(ctx, "digest built", "team_id", teamID, "annoyance_level", digest.AnnoyanceLevel)
	return digest, nil
}

// AnnoyanceLevel is 25 per unavailable starter plus the points deficit, capped at 100.
func AnnoyanceLevel(roster advisor.RosterReport, perf *advisor.PerformanceReport) int {
	level := annoyancePerUnavailable * roster.UnavailableCount
	if perf != nil && perf.Shamed {
		level += perf.Deficit
	}
	return min(level, maxAnnoyanceLevel)
}

func digestMessage(d Digest) string {
	parts := make([]string, 0, 4)
	if d.Roster.UnavailableCount > 0 {
		parts = append(parts, fmt.Sprintf("You have %d unavailable player(s) in your starting XI.", d.Roster.UnavailableCount))
	}
	if d.Performance != nil && d.Performance.Shamed {
		parts = append(parts, fmt.Sprintf("You were %d points below average in GW%d.", d.Performance.Deficit, d.Performance.Gameweek))
	}
	if d.Chip.Recommend {
		parts = append(parts, d.Chip.Reason)
	}
	if len(parts) == 0 {
		return msgDigestCalm
	}
	if d.AnnoyanceLevel >= maxAnnoyanceLevel {
		parts = append(parts, msgDigestGiveUp)
	}
	return strings.Join(parts, " ")
}
