package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
	"github.com/riskibarqy/fpl-annoyer/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// CreateItemInput is the incoming payload for item creation.
type CreateItemInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
}

type ItemService struct {
	repo   item.Repository
	logger *logging.Logger
}

func NewItemService(repo item.Repository, logger *logging.Logger) *ItemService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ItemService{repo: repo, logger: logger}
}

func (s *ItemService) Create(ctx context.Context, input CreateItemInput) (item.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ItemService.Create")
	defer span.End()

	candidate := item.Item{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
	}
	if err := candidate.Validate(); err != nil {
		return item.Item{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return item.Item{}, fmt.Errorf("create item: %w", err)
	}

	s.logger.InfoContext(ctx, "item created", "item_id", created.ID)
	return created, nil
}

func (s *ItemService) List(ctx context.Context) ([]item.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (item.Item, error) {
	if id <= 0 {
		return item.Item{}, fmt.Errorf("%w: item id must be positive", ErrInvalidInput)
	}

	found, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return item.Item{}, fmt.Errorf("get item: %w", err)
	}
	if !exists {
		return item.Item{}, fmt.Errorf("%w: Item with id %d not found", ErrNotFound, id)
	}
	return found, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ItemService.Delete")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: item id must be positive", ErrInvalidInput)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: Item with id %d not found", ErrNotFound, id)
	}

	s.logger.InfoContext(ctx, "item deleted", "item_id", id)
	return nil
}
