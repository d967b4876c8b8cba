package cache

import (
	"context"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	basecache "github.com/riskibarqy/fpl-annoyer/internal/platform/cache"
)

const (
	keyBootstrap = "bootstrap-static"
	keyFixtures  = "fixtures"
)

// Source caches the league-wide documents. Per-team documents always
// go to the upstream.
type Source struct {
	next      fpl.Source
	bootstrap *basecache.Store[fpl.Bootstrap]
	fixtures  *basecache.Store[[]fpl.Fixture]
}

var _ fpl.Source = (*Source)(nil)

func NewSource(next fpl.Source, bootstrap *basecache.Store[fpl.Bootstrap], fixtures *basecache.Store[[]fpl.Fixture]) *Source {
	return &Source{next: next, bootstrap: bootstrap, fixtures: fixtures}
}

func (s *Source) FetchBootstrap(ctx context.Context) (fpl.Bootstrap, error) {
	v, err := s.bootstrap.GetOrLoad(ctx, keyBootstrap, s.next.FetchBootstrap)
	if err != nil {
		return fpl.Bootstrap{}, err
	}
	return fpl.Bootstrap{
		Events:  append([]fpl.Event(nil), v.Events...),
		Players: append([]fpl.Player(nil), v.Players...),
	}, nil
}

func (s *Source) FetchFixtures(ctx context.Context) ([]fpl.Fixture, error) {
	v, err := s.fixtures.GetOrLoad(ctx, keyFixtures, s.next.FetchFixtures)
	if err != nil {
		return nil, err
	}
	return append([]fpl.Fixture(nil), v...), nil
}

func (s *Source) FetchEntry(ctx context.Context, teamID int64) (fpl.Entry, error) {
	return s.next.FetchEntry(ctx, teamID)
}

func (s *Source) FetchPicks(ctx context.Context, teamID int64, eventID int) ([]fpl.Pick, error) {
	return s.next.FetchPicks(ctx, teamID, eventID)
}

func (s *Source) FetchHistory(ctx context.Context, teamID int64) (fpl.History, error) {
	return s.next.FetchHistory(ctx, teamID)
}
