package tablescrub

import "errors"

// Row-level validation failures are normal outcomes recorded as
// rejects, never errors. These sentinels cover configuration and
// invariant problems that abort the whole chunk.
var (
	// ErrUnknownColumn is returned when a rule references a column absent from the chunk
	ErrUnknownColumn = errors.New("tablescrub: rule references unknown column")

	// ErrRuleConflict is returned when a field rule combines more than one validation kind
	ErrRuleConflict = errors.New("tablescrub: conflicting validation options in field rule")

	// ErrColumnCollision is returned when a generator or post-processor writes a column that already exists
	ErrColumnCollision = errors.New("tablescrub: generated column collides with existing column")

	// ErrRowCountMismatch is returned when a transform or generator produces a different number of values than the table has rows
	ErrRowCountMismatch = errors.New("tablescrub: transform output row count mismatch")

	// ErrEmptyRuleset is returned when a ruleset names no fields at all
	ErrEmptyRuleset = errors.New("tablescrub: ruleset has no fields")

	// ErrEmptyData indicates that the data source contains no records
	ErrEmptyData = errors.New("tablescrub: empty data source")

	// ErrUnsupportedFormat indicates an unsupported chunk file format
	ErrUnsupportedFormat = errors.New("tablescrub: unsupported file format")

	// ErrInvalidData indicates malformed or invalid chunk data
	ErrInvalidData = errors.New("tablescrub: invalid data format")
)
