package tablescrub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescrub/tablescrub/domain/model"
)

func TestBuildRejectReport(t *testing.T) {
	t.Parallel()

	src := buildTable(t, []string{"a", "b"},
		[]string{"a0", "b0"},
		[]string{"a1", "b1"},
		[]string{"a2", "b2"},
	)
	rejects := RejectRecord{
		"a": RowSet{1: {}},
		"b": RowSet{1: {}, 2: {}},
	}

	report, err := buildRejectReport(src, rejects, []string{"a", "b"}, "chunk_001", "hard_rejects")
	require.NoError(t, err)

	assert.Equal(t, "hard_rejects", report.Name())
	assert.Equal(t, model.NewHeader([]string{"file_name", "cols", "a", "b"}), report.Header())

	// A row rejected by two fields appears exactly once.
	require.Equal(t, 2, report.RowCount())

	row1, ok := report.RowByID(1)
	require.True(t, ok)
	assert.Equal(t, "chunk_001", row1.Cells[0].Str)
	assert.Equal(t, "a;b", row1.Cells[1].Str)
	assert.Equal(t, "a1", row1.Cells[2].Str)

	row2, ok := report.RowByID(2)
	require.True(t, ok)
	assert.Equal(t, "b", row2.Cells[1].Str)

	_, ok = report.RowByID(0)
	assert.False(t, ok)
}

func TestBuildRejectReportEmpty(t *testing.T) {
	t.Parallel()

	src := buildTable(t, []string{"a"}, []string{"a0"})

	report, err := buildRejectReport(src, RejectRecord{}, []string{"a"}, "chunk_001", "soft_rejects")
	require.NoError(t, err)

	assert.Equal(t, 0, report.RowCount())
	assert.Equal(t, model.NewHeader([]string{"file_name", "cols", "a"}), report.Header())
}

func TestCleanColumnsExcludeShadows(t *testing.T) {
	t.Parallel()

	tbl := buildTable(t, []string{"a", "a" + ShadowSuffix, "b"},
		[]string{"1", "2", "3"},
	)

	assert.Equal(t, []string{"a", "b"}, cleanColumns(tbl))
}

func TestFieldNames(t *testing.T) {
	t.Parallel()

	fields := []Field{{Name: "x"}, {Name: "y"}}
	assert.Equal(t, []string{"x", "y"}, fieldNames(fields))
}
