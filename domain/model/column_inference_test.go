package model

import "testing"

func TestInferColumnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		expected ColumnType
	}{
		{
			name:     "All integers",
			values:   []string{"1", "42", "0"},
			expected: ColumnTypeInteger,
		},
		{
			name:     "Integers and reals",
			values:   []string{"1", "41.88"},
			expected: ColumnTypeReal,
		},
		{
			name:     "Any text wins",
			values:   []string{"1", "THEFT"},
			expected: ColumnTypeText,
		},
		{
			name:     "Datetime values",
			values:   []string{"2023-05-01 12:30:00", "2023-05-02 08:00:00"},
			expected: ColumnTypeDatetime,
		},
		{
			name:     "US datetime with meridiem",
			values:   []string{"5/1/2023 3:04:05 PM"},
			expected: ColumnTypeDatetime,
		},
		{
			name:     "Empty column",
			values:   nil,
			expected: ColumnTypeText,
		},
		{
			name:     "Negative reals",
			values:   []string{"-87.62", "41.88"},
			expected: ColumnTypeReal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := InferColumnType(CellsFromStrings(tt.values)); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestInferColumnType_SkipsNulls(t *testing.T) {
	t.Parallel()

	values := []Cell{NullCell(), NewCell("12"), NullCell()}
	if got := InferColumnType(values); got != ColumnTypeInteger {
		t.Errorf("expected INTEGER, got %v", got)
	}

	allNull := []Cell{NullCell(), NullCell()}
	if got := InferColumnType(allNull); got != ColumnTypeText {
		t.Errorf("expected TEXT for all-null column, got %v", got)
	}
}

func TestInferColumnsInfo(t *testing.T) {
	t.Parallel()

	header := NewHeader([]string{"id", "latitude", "primary_type"})
	records := [][]Cell{
		CellsFromStrings([]string{"100", "41.88", "THEFT"}),
		CellsFromStrings([]string{"101", "", "BATTERY"}),
	}
	table, err := NewTable("crimes", header, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := InferColumnsInfo(table)
	if len(info) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(info))
	}
	if info[0].Type != ColumnTypeInteger {
		t.Errorf("expected id to be INTEGER, got %v", info[0].Type)
	}
	if info[1].Type != ColumnTypeReal {
		t.Errorf("expected latitude to be REAL, got %v", info[1].Type)
	}
	if info[2].Type != ColumnTypeText {
		t.Errorf("expected primary_type to be TEXT, got %v", info[2].Type)
	}
}
