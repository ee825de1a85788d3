package ml

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/BojkoIr/ChurnSight/internal/core"
	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

var ErrNoModel = errors.New("no model trained yet")

// Service trains models on demand and holds the latest one for predictions.
type Service struct {
	population core.PopulationReader

	mu              sync.RWMutex
	model           *Model
	metrics         Metrics
	snapshotVersion string
}

func NewService(population core.PopulationReader) *Service {
	return &Service{population: population}
}

// Train fits a fresh model on the current snapshot and replaces the held one.
func (s *Service) Train(ctx context.Context, modelType string) (Metrics, error) {
	snap, err := s.population.Snapshot(ctx)
	if err != nil {
		return Metrics{}, err
	}

	model, metrics, err := Train(snap.Customers, modelType)
	if err != nil {
		return Metrics{}, err
	}

	log.Printf(
		"[ML] trained %s on snapshot %s: accuracy=%.3f roc_auc=%.3f (train=%d test=%d)",
		modelType, snap.Version, metrics.Accuracy, metrics.ROCAUC,
		metrics.TrainSize, metrics.TestSize,
	)

	s.mu.Lock()
	s.model = model
	s.metrics = metrics
	s.snapshotVersion = snap.Version
	s.mu.Unlock()

	return metrics, nil
}

// Predict scores one customer profile with the latest trained model.
func (s *Service) Predict(profile dataset.Customer) (int, float64, error) {
	s.mu.RLock()
	model := s.model
	s.mu.RUnlock()

	if model == nil {
		return 0, 0, ErrNoModel
	}

	pred, proba := model.Predict(profile)
	return pred, proba, nil
}

// LastMetrics reports the held model's metrics and training snapshot.
func (s *Service) LastMetrics() (Metrics, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.model == nil {
		return Metrics{}, "", ErrNoModel
	}
	return s.metrics, s.snapshotVersion, nil
}
