package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	itemmock "github.com/riskibarqy/fpl-annoyer/internal/mocks/domain/item"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestItemService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := itemmock.NewRepository(t)
	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(it item.Item) bool { return it.Name == "scarf" })).
		Return(item.Item{ID: 1, Name: "scarf", Price: decimal.NewFromInt(12)}, nil).
		Once()

	got, err := NewItemService(repo, nil).Create(ctx, CreateItemInput{Name: "  scarf ", Price: decimal.NewFromInt(12)})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestItemService_Create_Invalid(t *testing.T) {
	t.Parallel()

	repo := itemmock.NewRepository(t)
	svc := NewItemService(repo, nil)

	tests := []CreateItemInput{
		{Name: " ", Price: decimal.NewFromInt(1)},
		{Name: "mug", Price: decimal.NewFromInt(-1)},
	}
	for _, input := range tests {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestItemService_GetAndDelete_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := itemmock.NewRepository(t)
	repo.On("GetByID", mock.Anything, int64(9)).Return(item.Item{}, false, nil).Once()
	repo.On("Delete", mock.Anything, int64(9)).Return(false, nil).Once()

	svc := NewItemService(repo, nil)
	if _, err := svc.Get(ctx, 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on get, got %v", err)
	}
	if err := svc.Delete(ctx, 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
