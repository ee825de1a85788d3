package customers

import (
	"context"
	"errors"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/filters"
)

var ErrNotFound = errors.New("customer not found")

type Service struct {
	repo dataset.Repository
}

func NewService(repo dataset.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the customers matching the filter, newest snapshot.
func (s *Service) List(ctx context.Context, f filters.Filter) ([]dataset.Customer, string, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}
	return f.Apply(snap), snap.Version, nil
}

func (s *Service) Get(ctx context.Context, id int64) (dataset.Customer, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return dataset.Customer{}, err
	}

	c, ok := snap.FindByID(id)
	if !ok {
		return dataset.Customer{}, ErrNotFound
	}
	return c, nil
}

// Save appends a new customer. The repository assigns a monotonically
// increasing ID and marks the outcome unknown; whatever the caller put in
// those fields is discarded.
func (s *Service) Save(ctx context.Context, c dataset.Customer) (dataset.Customer, error) {
	if c.Geography == "" {
		return dataset.Customer{}, errors.New("geography is required")
	}
	if c.Gender == "" {
		return dataset.Customer{}, errors.New("gender is required")
	}
	if c.NumProducts < 1 {
		return dataset.Customer{}, errors.New("num_products must be at least 1")
	}
	if c.Age < 18 {
		return dataset.Customer{}, errors.New("age must be at least 18")
	}

	return s.repo.Append(ctx, c)
}
