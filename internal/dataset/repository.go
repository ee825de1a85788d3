package dataset

import "context"

// Repository owns the population. Snapshot returns the current immutable
// view; Append persists a new customer and publishes a successor snapshot.
// An in-flight evaluation keeps reading the snapshot it started with.
type Repository interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	Append(ctx context.Context, c Customer) (Customer, error)
}
