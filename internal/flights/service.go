package flights

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

// --------------------------------------------------
// Create flight
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Flight, error) {
	if req.Quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}

	f := &Flight{
		ID:           uuid.NewString(),
		FlightNumber: req.FlightNumber,
		FlightType:   req.FlightType,
		Quantity:     req.Quantity,
		ArrivalTime:  req.ArrivalTime,
		Route:        req.Route,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) List(ctx context.Context) ([]Flight, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Update flight (partial)
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Flight, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FlightNumber != nil {
		f.FlightNumber = *req.FlightNumber
	}
	if req.FlightType != nil {
		f.FlightType = *req.FlightType
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, errors.New("quantity must not be negative")
		}
		f.Quantity = *req.Quantity
	}
	if req.ArrivalTime != nil {
		f.ArrivalTime = *req.ArrivalTime
	}
	if req.Route != nil {
		f.Route = *req.Route
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
