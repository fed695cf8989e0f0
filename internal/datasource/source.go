// Package datasource fetches match tables from external providers and the
// local filesystem.
package datasource

import (
	"context"

	"github.com/yourusername/lay-scout/internal/models"
)

// Source delivers one complete match table per call. Implementations
// normalize to MatchRecord; schema validation happens at parse time so a
// malformed table fails the fetch, not the mining run.
type Source interface {
	// FetchTable retrieves the full table from the provider.
	FetchTable(ctx context.Context) ([]models.MatchRecord, error)

	// Name returns the data source name for logging and errors.
	Name() string
}

// SourceError wraps provider failures with the source name and an error
// code.
type SourceError struct {
	Source  string
	Code    string
	Message string
	Err     error
}

func (e SourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeNetworkError = "network_error"
	ErrCodeServerError  = "server_error"
	ErrCodeNotFound     = "not_found"
	ErrCodeInvalidData  = "invalid_data"
)

// NewSourceError creates a new source error.
func NewSourceError(source, code, message string, err error) SourceError {
	return SourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
