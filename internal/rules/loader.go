package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/signal"
)

// catalogFile is the on-disk shape of an external rule catalog.
type catalogFile struct {
	Filters []ContextFilter `yaml:"filters"`
}

// LoadCatalog builds the run catalog. With an empty path the embedded
// default filter set is used; otherwise the YAML file replaces it. Every
// filter is validated against the signal catalog before the run starts so
// a malformed definition fails at load, not mid-backtest.
func LoadCatalog(path string) (*Catalog, error) {
	filters := DefaultFilters
	if path != "" {
		loaded, err := loadCatalogFile(path)
		if err != nil {
			return nil, err
		}
		filters = loaded
	}

	if len(filters) == 0 {
		return nil, models.ErrCatalogEmpty
	}
	for _, f := range filters {
		if err := f.Validate(signal.Known); err != nil {
			return nil, fmt.Errorf("invalid rule catalog: %w", err)
		}
	}

	return NewCatalog(filters), nil
}

func loadCatalogFile(path string) ([]ContextFilter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule catalog %s: %w", path, err)
	}
	return file.Filters, nil
}
