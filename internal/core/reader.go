package core

import (
	"context"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

// PopulationReader is the read-only view of the dataset shared by the
// analytics, risk, ml and export services.
type PopulationReader interface {
	Snapshot(ctx context.Context) (*dataset.Snapshot, error)
}
