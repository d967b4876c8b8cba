package item

import "context"

// Repository describes item persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Item) (Item, error)
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int64) (Item, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
