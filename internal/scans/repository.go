package scans

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("scan not found")

type Repository interface {
	Create(ctx context.Context, s *Scan) error
	List(ctx context.Context, f Filter) ([]Scan, error)
	GetByID(ctx context.Context, id string) (*Scan, error)
}
