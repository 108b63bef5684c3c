package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. Inserts use
// generator-unique ids, so a duplicate insert (last-writer-wins) is not
// expected in practice.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
	}
}

// Insert stores the record under its identifier.
func (r *MemoryRepo) Insert(ctx context.Context, rec Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.ID] = rec
	return nil
}

// GetByID returns the record for an identifier.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return rec, nil
}

// Len reports the number of stored records.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

var _ Repo = (*MemoryRepo)(nil)
