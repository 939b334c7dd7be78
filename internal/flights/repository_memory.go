package flights

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	flights map[string]Flight
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{flights: map[string]Flight{}}
}

func (r *MemoryRepository) Create(ctx context.Context, f *Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	r.flights[f.ID] = *f
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Flight{}
	for _, f := range r.flights {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flights[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (r *MemoryRepository) Update(ctx context.Context, f *Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.flights[f.ID]; !ok {
		return ErrNotFound
	}
	r.flights[f.ID] = *f
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.flights[id]; !ok {
		return ErrNotFound
	}
	delete(r.flights, id)
	return nil
}
