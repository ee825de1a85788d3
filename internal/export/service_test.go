package export

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/filters"
)

type mockUploader struct {
	key  string
	data []byte
	err  error
}

func (m *mockUploader) UploadBytes(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.key = key
	m.data = data
	return "https://cdn.example.com/" + key, nil
}

func labeled(exited int) *int {
	return &exited
}

func seed() []dataset.Customer {
	return []dataset.Customer{
		{RowNumber: 1, ID: 1, Geography: "France", Gender: "Female", Age: 30, NumProducts: 1, Exited: labeled(0)},
		{RowNumber: 2, ID: 2, Geography: "Germany", Gender: "Male", Age: 50, NumProducts: 2, Exited: labeled(1)},
	}
}

func TestExport_WritesFilteredCSV(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dataset.NewMemoryRepository(seed()), nil, dir)

	result, err := service.Export(context.Background(), filters.Filter{
		Geographies: []string{"Germany"},
	}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Rows != 1 {
		t.Errorf("expected 1 exported row, got %d", result.Rows)
	}
	if result.JobID == "" || result.SnapshotVersion == "" {
		t.Errorf("expected job id and snapshot version, got %+v", result)
	}
	if result.URL != "" {
		t.Errorf("expected no URL without upload, got %q", result.URL)
	}

	raw, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "Germany") || strings.Contains(content, "France") {
		t.Errorf("unexpected export content:\n%s", content)
	}
}

func TestExport_Upload(t *testing.T) {
	uploader := &mockUploader{}
	service := NewService(dataset.NewMemoryRepository(seed()), uploader, t.TempDir())

	result, err := service.Export(context.Background(), filters.Filter{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.URL == "" {
		t.Error("expected an upload URL")
	}
	if !strings.HasPrefix(uploader.key, "exports/") || !strings.HasSuffix(uploader.key, ".csv") {
		t.Errorf("unexpected object key %q", uploader.key)
	}
	if len(uploader.data) == 0 {
		t.Error("expected uploaded bytes")
	}
}

func TestExport_UploadWithoutStorage(t *testing.T) {
	service := NewService(dataset.NewMemoryRepository(seed()), nil, t.TempDir())

	if _, err := service.Export(context.Background(), filters.Filter{}, true); err == nil {
		t.Fatal("expected error when object storage is not configured")
	}
}
