// Package model provides domain model for tablescrub
package model

// Cell is a single nullable table value. The zero value is null.
type Cell struct {
	// Str is the string value. Meaningless when Valid is false.
	Str string
	// Valid reports whether the cell holds a value.
	Valid bool
}

// NewCell creates a non-null Cell holding s.
func NewCell(s string) Cell {
	return Cell{Str: s, Valid: true}
}

// NullCell creates a null Cell.
func NullCell() Cell {
	return Cell{}
}

// IsNull reports whether the cell is null.
func (c Cell) IsNull() bool {
	return !c.Valid
}

// Equal compare Cell.
func (c Cell) Equal(c2 Cell) bool {
	if c.Valid != c2.Valid {
		return false
	}
	return !c.Valid || c.Str == c2.Str
}

// CellsFromStrings converts raw string values to cells.
// Empty strings become null; no other coercion is performed.
func CellsFromStrings(values []string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = NullCell()
			continue
		}
		cells[i] = NewCell(v)
	}
	return cells
}

// Header is table header.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Index returns the position of the named column, or -1 if absent.
func (h Header) Index(name string) int {
	for i, v := range h {
		if v == name {
			return i
		}
	}
	return -1
}

// Contains reports whether the header holds the named column.
func (h Header) Contains(name string) bool {
	return h.Index(name) >= 0
}

// Clone returns an independent copy of the header.
func (h Header) Clone() Header {
	h2 := make(Header, len(h))
	copy(h2, h)
	return h2
}

// Row is one table row. ID is the stable identifier assigned at load
// time; it survives row removal so reject reports can reference
// original positions.
type Row struct {
	ID    int
	Cells []Cell
}

// NewRow create new Row.
func NewRow(id int, cells []Cell) Row {
	return Row{ID: id, Cells: cells}
}

// Equal compare Row.
func (r Row) Equal(r2 Row) bool {
	if r.ID != r2.ID || len(r.Cells) != len(r2.Cells) {
		return false
	}
	for i, c := range r.Cells {
		if !c.Equal(r2.Cells[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	cells := make([]Cell, len(r.Cells))
	copy(cells, r.Cells)
	return Row{ID: r.ID, Cells: cells}
}

// ColumnType represents the SQL column type
type ColumnType int

const (
	// ColumnTypeText represents TEXT column type
	ColumnTypeText ColumnType = iota
	// ColumnTypeInteger represents INTEGER column type
	ColumnTypeInteger
	// ColumnTypeReal represents REAL column type
	ColumnTypeReal
	// ColumnTypeDatetime represents datetime stored as TEXT in ISO8601 format
	ColumnTypeDatetime
)

const (
	sqlTypeText    = "TEXT"
	sqlTypeInteger = "INTEGER"
	sqlTypeReal    = "REAL"
)

// String returns the SQL column type string
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeText:
		return sqlTypeText
	case ColumnTypeInteger:
		return sqlTypeInteger
	case ColumnTypeReal:
		return sqlTypeReal
	case ColumnTypeDatetime:
		return sqlTypeText // SQLite stores datetime as TEXT in ISO8601 format
	default:
		return sqlTypeText
	}
}

// ColumnInfo represents column information with name and inferred type
type ColumnInfo struct {
	Name string
	Type ColumnType
}
