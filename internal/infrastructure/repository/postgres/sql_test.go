package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	"github.com/shopspring/decimal"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("select item: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: connection refused")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestIsUndefinedTable(t *testing.T) {
	t.Run("matches missing relation", func(t *testing.T) {
		if !isUndefinedTable(fakeErr(`pq: relation "items" does not exist (42P01)`)) {
			t.Fatalf("expected true for undefined table")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isUndefinedTable(fakeErr("pq: password authentication failed")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestItemModelRoundTrip(t *testing.T) {
	desc := "wool"
	in := item.Item{Name: "scarf", Description: &desc, Price: decimal.RequireFromString("12.50")}

	row := itemToModel(in)
	if !row.Description.Valid || row.Description.String != "wool" {
		t.Fatalf("unexpected description column: %+v", row.Description)
	}

	row.ID = 4
	row.CreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	out := row.toDomain()
	if out.ID != 4 || out.Description == nil || *out.Description != "wool" || !out.Price.Equal(in.Price) {
		t.Fatalf("unexpected item: %+v", out)
	}
	if out.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", out.CreatedAt.Location())
	}

	if itemToModel(item.Item{Name: "mug"}).Description.Valid {
		t.Fatalf("nil description must map to NULL")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
