// Package model provides domain model for tablescrub
package model

import "errors"

var (
	// ErrDuplicateColumnName is returned when a table would contain duplicate column names
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrColumnNotFound is returned when a named column does not exist in the table
	ErrColumnNotFound = errors.New("column not found")

	// ErrRowCountMismatch is returned when column values do not match the table row count
	ErrRowCountMismatch = errors.New("row count mismatch")
)
