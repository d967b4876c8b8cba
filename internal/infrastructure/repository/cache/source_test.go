package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/fpl"
	fplmock "github.com/riskibarqy/fpl-annoyer/internal/mocks/domain/fpl"
	basecache "github.com/riskibarqy/fpl-annoyer/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func newTestSource(t *testing.T) (*Source, *fplmock.Source) {
	t.Helper()
	next := fplmock.NewSource(t)
	return NewSource(
		next,
		basecache.NewStore[fpl.Bootstrap]("bootstrap", time.Minute, nil),
		basecache.NewStore[[]fpl.Fixture]("fixtures", time.Minute, nil),
	), next
}

func TestSource_BootstrapIsCached(t *testing.T) {
	t.Parallel()

	src, next := newTestSource(t)
	next.On("FetchBootstrap", mock.Anything).
		Return(fpl.Bootstrap{Players: []fpl.Player{{ID: 1, WebName: "Saka"}}}, nil).
		Once()

	ctx := context.Background()
	first, err := src.FetchBootstrap(ctx)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	first.Players[0].WebName = "mutated"

	second, err := src.FetchBootstrap(ctx)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if second.Players[0].WebName != "Saka" {
		t.Fatalf("cached snapshot was mutated through a previous result: %+v", second.Players[0])
	}
}

func TestSource_FailedLoadIsNotCached(t *testing.T) {
	t.Parallel()

	src, next := newTestSource(t)
	next.On("FetchFixtures", mock.Anything).Return(nil, errors.New("boom")).Once()
	next.On("FetchFixtures", mock.Anything).Return([]fpl.Fixture{{EventID: 3, HomeTeamID: 1, AwayTeamID: 2}}, nil).Once()

	ctx := context.Background()
	if _, err := src.FetchFixtures(ctx); err == nil {
		t.Fatalf("expected first fetch to fail")
	}
	got, err := src.FetchFixtures(ctx)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if len(got) != 1 || got[0].EventID != 3 {
		t.Fatalf("unexpected fixtures: %+v", got)
	}
}

func TestSource_TeamDocumentsPassThrough(t *testing.T) {
	t.Parallel()

	src, next := newTestSource(t)
	next.On("FetchPicks", mock.Anything, int64(7), 4).Return([]fpl.Pick{{PlayerID: 1, Position: 1}}, nil).Twice()

	ctx := context.Background()
	for range 2 {
		picks, err := src.FetchPicks(ctx, 7, 4)
		if err != nil {
			t.Fatalf("fetch picks: %v", err)
		}
		if len(picks) != 1 {
			t.Fatalf("unexpected picks: %+v", picks)
		}
	}
}
