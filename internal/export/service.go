package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/BojkoIr/ChurnSight/internal/core"
	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/filters"
)

// Uploader pushes an exported file to object storage. Optional; nil disables
// uploads.
type Uploader interface {
	UploadBytes(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Result describes one finished export job.
type Result struct {
	JobID           string `json:"job_id"`
	Path            string `json:"path"`
	Rows            int    `json:"rows"`
	SnapshotVersion string `json:"snapshot_version"`
	URL             string `json:"url,omitempty"`
}

type Service struct {
	population core.PopulationReader
	uploader   Uploader
	dir        string
}

func NewService(population core.PopulationReader, uploader Uploader, dir string) *Service {
	return &Service{
		population: population,
		uploader:   uploader,
		dir:        dir,
	}
}

// Export writes the filtered dataset to a timestamped CSV file and, when
// requested and configured, uploads it to object storage.
func (s *Service) Export(ctx context.Context, f filters.Filter, upload bool) (*Result, error) {
	snap, err := s.population.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	matched := f.Apply(snap)

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, matched); err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	path := timestampedFilename(s.dir, "filtered_customer_churn")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}

	result := &Result{
		JobID:           uuid.NewString(),
		Path:            path,
		Rows:            len(matched),
		SnapshotVersion: snap.Version,
	}

	if upload {
		if s.uploader == nil {
			return nil, fmt.Errorf("object storage is not configured")
		}
		key := fmt.Sprintf("exports/%s.csv", result.JobID)
		url, err := s.uploader.UploadBytes(ctx, key, "text/csv", buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("upload export: %w", err)
		}
		result.URL = url
	}

	return result, nil
}

func timestampedFilename(dir, name string) string {
	t := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", name, t))
}
