package tablescrub

import (
	"fmt"

	"github.com/tablescrub/tablescrub/domain/model"
)

// Result is the complete outcome of scrubbing one chunk.
type Result struct {
	// Clean is the validated and transformed table, hard-rejected rows
	// removed and shadow columns excluded.
	Clean *model.Table
	// HardRejects lists every hard-rejected row with its original
	// values, the source chunk identifier, and the offending columns.
	HardRejects *model.Table
	// SoftRejects lists every soft-rejected row's cleaned and original
	// values, similarly annotated.
	SoftRejects *model.Table
	// HardRecord and SoftRecord are the raw per-column reject sets.
	HardRecord RejectRecord
	SoftRecord RejectRecord
	// Summary consolidates the reject bookkeeping for logging.
	Summary Summary
}

// Scrub cleans and validates one chunk of records. The input table is
// not modified; the result is a pure function of the table and the
// ruleset, so re-running on the same chunk yields identical clean data
// and reject sets.
//
// Mandatory fields are evaluated first against the unfiltered table;
// rows failing any of them are removed once, as the union of all
// mandatory reject sets, so every hard-reject identifier is relative
// to the pre-filter row indexing. Optional fields are then evaluated
// against the surviving rows, nulling failing values in place and
// preserving originals in shadow columns.
func Scrub(tbl *model.Table, chunkID string, rules Ruleset) (*Result, error) {
	if err := rules.check(); err != nil {
		return nil, err
	}

	filtered := tbl.Clone()

	hard, err := runPhase(filtered, rules.Mandatory, true)
	if err != nil {
		return nil, fmt.Errorf("hard-reject phase: %w", err)
	}
	filtered.RemoveRows(hard.Union())

	soft, err := runPhase(filtered, rules.Optional, false)
	if err != nil {
		return nil, fmt.Errorf("soft-reject phase: %w", err)
	}

	// Hard report rows come from the original unfiltered input; soft
	// report rows come from the post-filter table including shadow
	// columns.
	hardReport, err := buildRejectReport(tbl, hard, fieldNames(rules.Mandatory), chunkID, "hard_rejects")
	if err != nil {
		return nil, fmt.Errorf("hard-reject report: %w", err)
	}
	softReport, err := buildRejectReport(filtered, soft, fieldNames(rules.Optional), chunkID, "soft_rejects")
	if err != nil {
		return nil, fmt.Errorf("soft-reject report: %w", err)
	}

	clean, err := filtered.SelectColumns(cleanColumns(filtered))
	if err != nil {
		return nil, fmt.Errorf("clean table: %w", err)
	}

	return &Result{
		Clean:       clean,
		HardRejects: hardReport,
		SoftRejects: softReport,
		HardRecord:  hard,
		SoftRecord:  soft,
		Summary:     newSummary(chunkID, tbl.RowCount(), clean.RowCount(), hard, soft),
	}, nil
}
