package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrEmptyTable      = errors.New("table contains no rows")
	ErrNoApprovedRules = errors.New("no approved rules to apply")
	ErrCatalogEmpty    = errors.New("rule catalog is empty")
)

// SchemaError reports a structurally missing column or market. It is fatal
// to the stage that needed the schema (signal derivation, recommendation),
// never to the whole process.
type SchemaError struct {
	Missing string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column missing from input schema: %s", e.Missing)
}

// NewSchemaError creates a SchemaError for a missing market or column.
func NewSchemaError(missing string) *SchemaError {
	return &SchemaError{Missing: missing}
}

// UnknownOutcomeError reports a target-outcome name absent from the
// registry. Referencing an unknown outcome fails loud instead of silently
// evaluating to "never occurred".
type UnknownOutcomeError struct {
	Name string
}

func (e *UnknownOutcomeError) Error() string {
	return fmt.Sprintf("unknown target outcome: %s", e.Name)
}

// UnknownFilterError reports a context-filter name absent from the catalog.
type UnknownFilterError struct {
	Name string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown context filter: %s", e.Name)
}
