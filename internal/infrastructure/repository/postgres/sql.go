package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isUndefinedTable reports the pq error raised before migrations ran.
func isUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "42P01") || strings.Contains(msg, "does not exist")
}

func queryError(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: schema missing, run the migration command first: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
