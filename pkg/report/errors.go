package report

import "errors"

// Error definitions for row set operations.
var (
	// ErrSchemaMismatch is returned when row sets to aggregate disagree on their header.
	ErrSchemaMismatch = errors.New("row sets have different headers")
	// ErrNoRowSets is returned when Aggregate receives no input.
	ErrNoRowSets = errors.New("no row sets to aggregate")
	// ErrEmptyFile is returned when a row file has no header line.
	ErrEmptyFile = errors.New("row file has no header")
)
