package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	"github.com/shopspring/decimal"
)

func TestItemRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(nil)

	first, err := repo.Create(ctx, item.Item{Name: "scarf", Price: decimal.RequireFromString("12.50")})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := repo.Create(ctx, item.Item{Name: "mug", Price: decimal.NewFromInt(8)})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if first.ID != 1 || second.ID != 2 || first.CreatedAt.IsZero() {
		t.Fatalf("unexpected ids or timestamps: %+v %+v", first, second)
	}

	got, ok, err := repo.GetByID(ctx, 2)
	if err != nil || !ok || got.Name != "mug" {
		t.Fatalf("get: item=%+v ok=%v err=%v", got, ok, err)
	}

	deleted, err := repo.Delete(ctx, 1)
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	if deleted, _ := repo.Delete(ctx, 1); deleted {
		t.Fatalf("second delete should report missing")
	}

	third, _ := repo.Create(ctx, item.Item{Name: "flag", Price: decimal.Zero})
	if third.ID != 3 {
		t.Fatalf("ids must not be reused, got %d", third.ID)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "mug" || items[1].Name != "flag" {
		t.Fatalf("unexpected list: %+v", items)
	}
}

func TestItemRepository_SeedAdvancesIDs(t *testing.T) {
	repo := NewItemRepository([]item.Item{{ID: 9, Name: "seeded"}})

	created, err := repo.Create(context.Background(), item.Item{Name: "next"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 10 {
		t.Fatalf("expected id after seed, got %d", created.ID)
	}
}
