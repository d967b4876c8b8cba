package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrNoEvent               = errors.New("no matching gameweek")
)

func validateTeamID(teamID int64) error {
	if teamID <= 0 {
		return fmt.Errorf("%w: team id must be a positive integer, got %d", ErrInvalidInput, teamID)
	}
	return nil
}
