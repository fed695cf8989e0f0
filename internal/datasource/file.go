package datasource

import (
	"context"
	"os"

	"github.com/yourusername/lay-scout/internal/dataset"
	"github.com/yourusername/lay-scout/internal/models"
)

// FileSource reads a CSV match table from the local filesystem. Used by the
// CLIs and as the offline path in tests.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given CSV path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchTable reads and parses the file.
func (s *FileSource) FetchTable(ctx context.Context) ([]models.MatchRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeNotFound, "failed to open table file", err)
	}
	defer f.Close()

	rows, err := dataset.ParseCSV(f)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeInvalidData, "failed to parse table file", err)
	}
	return rows, nil
}

// Name returns the data source name.
func (s *FileSource) Name() string {
	return "file"
}
