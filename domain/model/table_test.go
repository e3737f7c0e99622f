package model

import (
	"errors"
	"testing"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()

	header := NewHeader([]string{"id", "ward"})
	records := [][]Cell{
		CellsFromStrings([]string{"100", "1"}),
		CellsFromStrings([]string{"101", ""}),
		CellsFromStrings([]string{"102", "3"}),
	}
	table, err := NewTable("crimes", header, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	if table.Name() != "crimes" {
		t.Errorf("expected name 'crimes', got %s", table.Name())
	}
	if table.RowCount() != 3 {
		t.Errorf("expected 3 rows, got %d", table.RowCount())
	}
	for i, row := range table.Rows() {
		if row.ID != i {
			t.Errorf("expected row %d to have ID %d, got %d", i, i, row.ID)
		}
	}
}

func TestNewTable_DuplicateColumn(t *testing.T) {
	t.Parallel()

	_, err := NewTable("bad", NewHeader([]string{"id", "id"}), nil)
	if !errors.Is(err, ErrDuplicateColumnName) {
		t.Errorf("expected ErrDuplicateColumnName, got %v", err)
	}
}

func TestNewTable_RaggedRecord(t *testing.T) {
	t.Parallel()

	records := [][]Cell{CellsFromStrings([]string{"only one"})}
	_, err := NewTable("bad", NewHeader([]string{"a", "b"}), records)
	if !errors.Is(err, ErrRowCountMismatch) {
		t.Errorf("expected ErrRowCountMismatch, got %v", err)
	}
}

func TestTable_Column(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	values, err := table.Column("ward")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
	if values[0].Str != "1" || !values[1].IsNull() || values[2].Str != "3" {
		t.Errorf("unexpected column values: %+v", values)
	}

	// Column returns a copy; mutating it must not touch the table
	values[0] = NewCell("changed")
	again, _ := table.Column("ward")
	if again[0].Str != "1" {
		t.Error("expected table to be unchanged after mutating column copy")
	}

	if _, err := table.Column("missing"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestTable_SetColumn(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	// Replace existing column
	if err := table.SetColumn("ward", CellsFromStrings([]string{"9", "9", "9"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values, _ := table.Column("ward")
	if values[0].Str != "9" {
		t.Errorf("expected '9', got %+v", values[0])
	}

	// Append new column
	if err := table.SetColumn("year", CellsFromStrings([]string{"2020", "2021", ""})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !table.HasColumn("year") {
		t.Error("expected 'year' column to exist")
	}
	year, _ := table.Column("year")
	if !year[2].IsNull() {
		t.Error("expected empty value to stay null")
	}

	// Row count mismatch
	err := table.SetColumn("bad", CellsFromStrings([]string{"1"}))
	if !errors.Is(err, ErrRowCountMismatch) {
		t.Errorf("expected ErrRowCountMismatch, got %v", err)
	}
}

func TestTable_DropColumn(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	if err := table.DropColumn("ward"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.HasColumn("ward") {
		t.Error("expected 'ward' to be dropped")
	}
	if len(table.Rows()[0].Cells) != 1 {
		t.Errorf("expected 1 cell per row, got %d", len(table.Rows()[0].Cells))
	}

	if err := table.DropColumn("ward"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestTable_RemoveRows(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	table.RemoveRows(map[int]struct{}{1: {}})

	if table.RowCount() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.RowCount())
	}
	// Surviving rows keep their original identifiers
	if table.Rows()[0].ID != 0 || table.Rows()[1].ID != 2 {
		t.Errorf("expected IDs 0 and 2, got %d and %d", table.Rows()[0].ID, table.Rows()[1].ID)
	}
	if _, ok := table.RowByID(1); ok {
		t.Error("expected row 1 to be gone")
	}
	if _, ok := table.RowByID(2); !ok {
		t.Error("expected row 2 to survive")
	}

	// Removing nothing is a no-op
	table.RemoveRows(nil)
	if table.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", table.RowCount())
	}
}

func TestTable_SelectColumns(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)

	selected, err := table.SelectColumns([]string{"ward"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !selected.Header().Equal(NewHeader([]string{"ward"})) {
		t.Errorf("unexpected header: %v", selected.Header())
	}
	if selected.Rows()[2].ID != 2 {
		t.Errorf("expected preserved row ID 2, got %d", selected.Rows()[2].ID)
	}

	if _, err := table.SelectColumns([]string{"missing"}); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestTable_Clone(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	clone := table.Clone()

	if !table.Equal(clone) {
		t.Error("expected clone to equal original")
	}

	if err := clone.SetColumn("ward", CellsFromStrings([]string{"", "", ""})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values, _ := table.Column("ward")
	if values[0].IsNull() {
		t.Error("expected original to be unchanged after mutating clone")
	}
}

func TestTable_Equal(t *testing.T) {
	t.Parallel()

	table1 := newTestTable(t)
	table2 := newTestTable(t)

	if !table1.Equal(table2) {
		t.Error("expected tables to be equal")
	}

	table2.RemoveRows(map[int]struct{}{0: {}})
	if table1.Equal(table2) {
		t.Error("expected tables with different row counts to be not equal")
	}
}
