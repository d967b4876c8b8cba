package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/fpl-annoyer/internal/domain/item"
)

// ItemRepository keeps items in insertion order. Ids are never reused.
type ItemRepository struct {
	mu     sync.RWMutex
	items  []item.Item
	nextID int64
	now    func() time.Time
}

func NewItemRepository(seed []item.Item) *ItemRepository {
	r := &ItemRepository{nextID: 1, now: time.Now}
	for _, it := range seed {
		if it.ID >= r.nextID {
			r.nextID = it.ID + 1
		}
		r.items = append(r.items, it)
	}
	return r
}

func (r *ItemRepository) Create(_ context.Context, it item.Item) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it.ID = r.nextID
	it.CreatedAt = r.now().UTC()
	r.nextID++
	r.items = append(r.items, it)
	return it, nil
}

func (r *ItemRepository) List(_ context.Context) ([]item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]item.Item, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (item.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return item.Item{}, false, nil
}

func (r *ItemRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
