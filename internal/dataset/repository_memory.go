package dataset

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	current *Snapshot

	appendErr error
}

func NewMemoryRepository(customers []Customer) *MemoryRepository {
	return &MemoryRepository{current: NewSnapshot(customers)}
}

func (r *MemoryRepository) Snapshot(ctx context.Context) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, nil
}

func (r *MemoryRepository) Append(ctx context.Context, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.appendErr != nil {
		return Customer{}, r.appendErr
	}

	c.ID = r.current.MaxID() + 1
	c.RowNumber = r.current.Size() + 1
	c.Exited = nil

	r.current = r.current.WithAppended(c)
	return c, nil
}
