package dataset

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// CSVRepository keeps the dataset in memory and mirrors every append back to
// the CSV file. Appends swap in a new snapshot under the write lock
// (copy-on-write), so readers never observe a partially written record.
type CSVRepository struct {
	path string

	mu      sync.RWMutex
	current *Snapshot
}

func NewCSVRepository(path string) (*CSVRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	customers, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	return &CSVRepository{
		path:    path,
		current: NewSnapshot(customers),
	}, nil
}

func (r *CSVRepository) Snapshot(ctx context.Context) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, nil
}

func (r *CSVRepository) Append(ctx context.Context, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.current.MaxID() + 1
	c.RowNumber = r.current.Size() + 1
	c.Exited = nil // outcome unknown until observed

	next := r.current.WithAppended(c)

	if err := r.writeFile(next); err != nil {
		return Customer{}, fmt.Errorf("persist dataset: %w", err)
	}

	r.current = next
	return c, nil
}

// writeFile rewrites the whole file via a temp file + rename so a crash mid
// write cannot truncate the dataset.
func (r *CSVRepository) writeFile(s *Snapshot) error {
	tmp := r.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, s.Customers); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, r.path)
}
