package fpl

import "context"

// Source describes the read-only upstream documents the use cases depend on.
type Source interface {
	FetchBootstrap(ctx context.Context) (Bootstrap, error)
	FetchEntry(ctx context.Context, teamID int64) (Entry, error)
	FetchPicks(ctx context.Context, teamID int64, eventID int) ([]Pick, error)
	FetchHistory(ctx context.Context, teamID int64) (History, error)
	FetchFixtures(ctx context.Context) ([]Fixture, error)
}
