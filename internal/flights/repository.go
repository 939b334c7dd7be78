package flights

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("flight not found")

type Repository interface {
	Create(ctx context.Context, f *Flight) error
	List(ctx context.Context) ([]Flight, error)
	GetByID(ctx context.Context, id string) (*Flight, error)
	Update(ctx context.Context, f *Flight) error
	Delete(ctx context.Context, id string) error
}
