package tablescrub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowSet(t *testing.T) {
	t.Parallel()

	s := make(RowSet)
	s.Add(5)
	s.Add(1)
	s.Add(5)

	assert.True(t, s.Has(1))
	assert.False(t, s.Has(2))
	assert.Equal(t, []int{1, 5}, s.IDs())
}

func TestRejectRecordUnion(t *testing.T) {
	t.Parallel()

	r := RejectRecord{
		"a": RowSet{1: {}, 2: {}},
		"b": RowSet{2: {}, 3: {}},
	}

	union := r.Union()
	assert.Equal(t, []int{1, 2, 3}, union.IDs())
}

func TestRejectRecordColumnsFor(t *testing.T) {
	t.Parallel()

	r := RejectRecord{
		"a": RowSet{1: {}, 2: {}},
		"b": RowSet{2: {}},
		"c": RowSet{2: {}},
	}

	// Offending columns come back in field evaluation order, not map
	// order.
	assert.Equal(t, []string{"c", "a", "b"}, r.ColumnsFor(2, []string{"c", "a", "b"}))
	assert.Equal(t, []string{"a"}, r.ColumnsFor(1, []string{"c", "a", "b"}))
	assert.Empty(t, r.ColumnsFor(9, []string{"c", "a", "b"}))
}

func TestRejectRecordFieldCount(t *testing.T) {
	t.Parallel()

	r := RejectRecord{"a": RowSet{1: {}, 2: {}}}
	assert.Equal(t, 2, r.FieldCount("a"))
	assert.Equal(t, 0, r.FieldCount("missing"))
}

func TestNewSummary(t *testing.T) {
	t.Parallel()

	hard := RejectRecord{
		"id":   RowSet{0: {}},
		"date": RowSet{0: {}, 4: {}},
	}
	soft := RejectRecord{
		"iucr": RowSet{7: {}},
		"ward": RowSet{7: {}, 8: {}},
	}

	s := newSummary("chunk_003", 10, 8, hard, soft)

	assert.Equal(t, "chunk_003", s.ChunkID)
	assert.Equal(t, 10, s.InputRows)
	assert.Equal(t, 8, s.CleanRows)
	// Row 0 fails two mandatory fields but is excluded once.
	assert.Equal(t, 2, s.HardRejectRows)
	assert.Equal(t, 2, s.SoftRejectRows)
	assert.Equal(t, 3, s.SoftFieldsNulled)
	assert.Equal(t, map[string]int{"id": 1, "date": 2}, s.HardRejectsByColumn)
	assert.Equal(t, map[string]int{"iucr": 1, "ward": 2}, s.SoftRejectsByColumn)
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	set := []string{"true", "false"}
	assert.True(t, containsFold(set, "TRUE"))
	assert.True(t, containsFold(set, "False"))
	assert.False(t, containsFold(set, "yes"))
	assert.False(t, containsFold(nil, "true"))
}
