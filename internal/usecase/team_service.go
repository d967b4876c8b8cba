package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
)

type TeamVerification struct {
	Valid bool
	Name  string
}

type TeamService struct {
	source fpl.Source
	logger *logging.Logger
}

func NewTeamService(source fpl.Source, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{source: source, logger: logger}
}

// Verify reports whether the team exists upstream. Any fetch failure
// counts as invalid.
func (s *TeamService) Verify(ctx context.Context, teamID int64) (TeamVerification, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Verify")
	defer span.End()

	if err := validateTeamID(teamID); err != nil {
		return TeamVerification{}, err
	}

	entry, err := s.source.FetchEntry(ctx, teamID)
	if err != nil {
		s.logger.InfoContext(ctx, "team verification failed", "team_id", teamID, "error", err)
		return TeamVerification{Valid: false}, nil
	}
	return TeamVerification{Valid: true, Name: entry.TeamName}, nil
}

func (s *TeamService) Info(ctx context.Context, teamID int64) (fpl.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Info")
	defer span.End()

	if err := validateTeamID(teamID); err != nil {
		return fpl.Entry{}, err
	}

	entry, err := s.source.FetchEntry(ctx, teamID)
	if err != nil {
		return fpl.Entry{}, fmt.Errorf("get team info team_id=%d: %w", teamID, err)
	}
	return entry, nil
}
