package risk

import (
	"context"
	"errors"

	"github.com/BojkoIr/ChurnSight/internal/core"
	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

var ErrCustomerNotFound = errors.New("customer not found")

type Service struct {
	population core.PopulationReader
}

func NewService(population core.PopulationReader) *Service {
	return &Service{population: population}
}

// EvaluateCustomer assesses an existing customer by ID.
func (s *Service) EvaluateCustomer(ctx context.Context, id int64) (*Assessment, error) {
	snap, err := s.population.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	target, ok := snap.FindByID(id)
	if !ok {
		return nil, ErrCustomerNotFound
	}

	return Evaluate(snap, target)
}

// EvaluateProfile assesses a hypothetical profile that is not (yet) part of
// the population.
func (s *Service) EvaluateProfile(ctx context.Context, profile dataset.Customer) (*Assessment, error) {
	snap, err := s.population.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Evaluate(snap, profile)
}
