package scans

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is an in-memory Repository used by tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	scans map[string]Scan
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{scans: map[string]Scan{}}
}

func (r *MemoryRepository) Create(ctx context.Context, s *Scan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.scans[s.ID] = *s
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, f Filter) ([]Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Scan{}
	for _, s := range r.scans {
		if f.FlightID != "" && s.FlightID != f.FlightID {
			continue
		}
		if f.EmployeeID != "" && s.EmployeeID != f.EmployeeID {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScannedAt.After(out[j].ScannedAt) })
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Scan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}
