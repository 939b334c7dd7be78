package employees

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("employee not found")

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
}
