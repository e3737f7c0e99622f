package tablescrub

import (
	"sort"
	"strings"
)

// RowSet is a set of row identifiers.
type RowSet map[int]struct{}

// Add inserts a row identifier.
func (s RowSet) Add(id int) {
	s[id] = struct{}{}
}

// Has reports membership.
func (s RowSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the identifiers in ascending order.
func (s RowSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// RejectRecord maps a column name to the set of row identifiers that
// failed that column's rule. The same identifier may appear under
// several columns when multiple fields fail in one row.
type RejectRecord map[string]RowSet

// Union returns the distinct row identifiers across all columns.
func (r RejectRecord) Union() RowSet {
	union := make(RowSet)
	for _, ids := range r {
		for id := range ids {
			union.Add(id)
		}
	}
	return union
}

// ColumnsFor returns the offending column names for one row, in the
// given field evaluation order.
func (r RejectRecord) ColumnsFor(id int, order []string) []string {
	var cols []string
	for _, name := range order {
		if r[name].Has(id) {
			cols = append(cols, name)
		}
	}
	return cols
}

// FieldCount returns the number of rejected rows recorded for a column.
func (r RejectRecord) FieldCount(column string) int {
	return len(r[column])
}

// Summary consolidates both phases' reject bookkeeping for one chunk.
type Summary struct {
	// ChunkID identifies the processed input chunk.
	ChunkID string
	// InputRows is the row count before any processing.
	InputRows int
	// CleanRows is the row count after hard-reject filtering.
	CleanRows int
	// HardRejectRows is the count of distinct rows excluded entirely.
	HardRejectRows int
	// SoftRejectRows is the count of distinct rows with at least one
	// nulled field.
	SoftRejectRows int
	// SoftFieldsNulled is the total count of nulled field values.
	SoftFieldsNulled int
	// HardRejectsByColumn and SoftRejectsByColumn break the counts
	// down per offending column.
	HardRejectsByColumn map[string]int
	SoftRejectsByColumn map[string]int
}

// newSummary builds the per-chunk summary from both reject records.
func newSummary(chunkID string, inputRows, cleanRows int, hard, soft RejectRecord) Summary {
	s := Summary{
		ChunkID:             chunkID,
		InputRows:           inputRows,
		CleanRows:           cleanRows,
		HardRejectsByColumn: make(map[string]int, len(hard)),
		SoftRejectsByColumn: make(map[string]int, len(soft)),
	}
	for col, ids := range hard {
		s.HardRejectsByColumn[col] = len(ids)
	}
	for col, ids := range soft {
		s.SoftRejectsByColumn[col] = len(ids)
		s.SoftFieldsNulled += len(ids)
	}
	s.HardRejectRows = len(hard.Union())
	s.SoftRejectRows = len(soft.Union())
	return s
}

// containsFold reports whether v equals any entry of set,
// case-insensitively.
func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
