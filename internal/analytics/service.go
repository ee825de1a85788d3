package analytics

import (
	"context"

	"github.com/BojkoIr/ChurnSight/internal/core"
	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/filters"
	"github.com/BojkoIr/ChurnSight/internal/stats"
)

// Service computes descriptive analytics over the filtered population.
type Service struct {
	population core.PopulationReader
}

func NewService(population core.PopulationReader) *Service {
	return &Service{population: population}
}

func (s *Service) filtered(ctx context.Context, f filters.Filter) ([]dataset.Customer, error) {
	snap, err := s.population.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(snap), nil
}

func (s *Service) KPIs(ctx context.Context, f filters.Filter) (stats.KPIs, error) {
	customers, err := s.filtered(ctx, f)
	if err != nil {
		return stats.KPIs{}, err
	}
	return stats.ComputeKPIs(customers), nil
}

func (s *Service) ChurnBy(ctx context.Context, f filters.Filter, dimension string) ([]stats.CategoryChurn, error) {
	customers, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return stats.ChurnBy(customers, dimension)
}

func (s *Service) ChurnByTenure(ctx context.Context, f filters.Filter) ([]stats.TenureBucket, error) {
	customers, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return stats.ChurnByTenure(customers), nil
}

func (s *Service) Describe(ctx context.Context, f filters.Filter, column string) (stats.Summary, error) {
	customers, err := s.filtered(ctx, f)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Describe(customers, column)
}

func (s *Service) Correlation(ctx context.Context, f filters.Filter) (stats.CorrelationMatrix, error) {
	customers, err := s.filtered(ctx, f)
	if err != nil {
		return stats.CorrelationMatrix{}, err
	}
	return stats.Correlate(customers), nil
}

func (s *Service) Histogram(ctx context.Context, f filters.Filter, column string, bins int) (stats.Histogram, error) {
	customers, err := s.filtered(ctx, f)
	if err != nil {
		return stats.Histogram{}, err
	}
	return stats.ComputeHistogram(customers, column, bins)
}
