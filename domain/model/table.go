package model

import "fmt"

// Table represents one chunk of records as an ordered collection of
// rows over named string columns. Rows keep the identifier they were
// assigned at construction even after other rows are removed.
type Table struct {
	// name is the table name, usually derived from the chunk file.
	name string
	// header is the ordered column names.
	header Header
	// rows is the table rows.
	rows []Row
}

// NewTable creates a Table from raw records, assigning row identifiers
// 0..n-1 in record order. Duplicate column names are rejected because
// per-column rules would be ambiguous.
func NewTable(name string, header Header, records [][]Cell) (*Table, error) {
	if err := checkHeader(header); err != nil {
		return nil, err
	}
	rows := make([]Row, len(records))
	for i, cells := range records {
		if len(cells) != len(header) {
			return nil, fmt.Errorf("record %d has %d cells, header has %d columns: %w",
				i, len(cells), len(header), ErrRowCountMismatch)
		}
		rows[i] = NewRow(i, cells)
	}
	return &Table{name: name, header: header, rows: rows}, nil
}

// NewTableFromRows creates a Table from rows that already carry
// identifiers, e.g. reject report rows referencing original positions.
func NewTableFromRows(name string, header Header, rows []Row) (*Table, error) {
	if err := checkHeader(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if len(row.Cells) != len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d columns: %w",
				row.ID, len(row.Cells), len(header), ErrRowCountMismatch)
		}
	}
	return &Table{name: name, header: header, rows: rows}, nil
}

func checkHeader(header Header) error {
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateColumnName, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Header return table header.
func (t *Table) Header() Header {
	return t.header
}

// Rows return table rows.
func (t *Table) Rows() []Row {
	return t.rows
}

// RowCount returns the number of rows currently in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// RowByID returns the row with the given identifier.
func (t *Table) RowByID(id int) (Row, bool) {
	for _, row := range t.rows {
		if row.ID == id {
			return row, true
		}
	}
	return Row{}, false
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.header.Contains(name)
}

// Column returns a copy of the named column's values in row order.
func (t *Table) Column(name string) ([]Cell, error) {
	idx := t.header.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	values := make([]Cell, len(t.rows))
	for i, row := range t.rows {
		values[i] = row.Cells[idx]
	}
	return values, nil
}

// SetColumn replaces the named column's values, or appends a new
// column if the name is not present. The value count must match the
// current row count.
func (t *Table) SetColumn(name string, values []Cell) error {
	if len(values) != len(t.rows) {
		return fmt.Errorf("column %s has %d values, table has %d rows: %w",
			name, len(values), len(t.rows), ErrRowCountMismatch)
	}
	idx := t.header.Index(name)
	if idx < 0 {
		t.header = append(t.header, name)
		for i := range t.rows {
			t.rows[i].Cells = append(t.rows[i].Cells, values[i])
		}
		return nil
	}
	for i := range t.rows {
		t.rows[i].Cells[idx] = values[i]
	}
	return nil
}

// DropColumn removes the named column from the table.
func (t *Table) DropColumn(name string) error {
	idx := t.header.Index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	t.header = append(t.header[:idx], t.header[idx+1:]...)
	for i := range t.rows {
		t.rows[i].Cells = append(t.rows[i].Cells[:idx], t.rows[i].Cells[idx+1:]...)
	}
	return nil
}

// RemoveRows removes every row whose identifier appears in ids,
// preserving the order and identifiers of the remaining rows.
func (t *Table) RemoveRows(ids map[int]struct{}) {
	if len(ids) == 0 {
		return
	}
	kept := t.rows[:0]
	for _, row := range t.rows {
		if _, drop := ids[row.ID]; !drop {
			kept = append(kept, row)
		}
	}
	t.rows = kept
}

// SelectColumns returns a new table containing only the named columns,
// in the given order. Row identifiers are preserved.
func (t *Table) SelectColumns(names []string) (*Table, error) {
	indices := make([]int, len(names))
	for i, name := range names {
		idx := t.header.Index(name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
		}
		indices[i] = idx
	}
	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		cells := make([]Cell, len(indices))
		for j, idx := range indices {
			cells[j] = row.Cells[idx]
		}
		rows[i] = NewRow(row.ID, cells)
	}
	return NewTableFromRows(t.name, NewHeader(names), rows)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	rows := make([]Row, len(t.rows))
	for i, row := range t.rows {
		rows[i] = row.Clone()
	}
	return &Table{name: t.name, header: t.header.Clone(), rows: rows}
}

// Equal compare Table.
func (t *Table) Equal(t2 *Table) bool {
	if t.Name() != t2.Name() {
		return false
	}
	if !t.header.Equal(t2.header) {
		return false
	}
	if len(t.rows) != len(t2.rows) {
		return false
	}
	for i, row := range t.rows {
		if !row.Equal(t2.rows[i]) {
			return false
		}
	}
	return true
}
