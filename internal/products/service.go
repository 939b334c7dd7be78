package products

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Product, error) {
	if req.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, errors.New("stock must not be negative")
	}

	p := &Product{
		ID:             uuid.NewString(),
		Name:           req.Name,
		SKU:            req.SKU,
		Category:       req.Category,
		Price:          req.Price,
		Stock:          req.Stock,
		ExpirationDays: req.ExpirationDays,
		UnitWeight:     req.UnitWeight,
		UnitVolume:     req.UnitVolume,
		ImageURL:       req.ImageURL,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, errors.New("price must not be negative")
		}
		p.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.New("stock must not be negative")
		}
		p.Stock = *req.Stock
	}
	if req.ExpirationDays != nil {
		p.ExpirationDays = *req.ExpirationDays
	}
	if req.UnitWeight != nil {
		p.UnitWeight = *req.UnitWeight
	}
	if req.UnitVolume != nil {
		p.UnitVolume = *req.UnitVolume
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
