package tablescrub

import (
	"strings"

	"github.com/tablescrub/tablescrub/domain/model"
)

const (
	// reportFileColumn names the report column carrying the source
	// chunk identifier.
	reportFileColumn = "file_name"
	// reportColsColumn names the report column listing the offending
	// field names, joined by reportColsSeparator.
	reportColsColumn = "cols"
	reportColsSeparator = ";"
)

// buildRejectReport assembles one reject report: every row of src
// whose identifier appears in the reject record, exactly once,
// prefixed with the chunk identifier and the offending column list.
// Row identifiers are preserved so reports can reference original
// chunk positions.
func buildRejectReport(src *model.Table, rejects RejectRecord, order []string, chunkID, name string) (*model.Table, error) {
	header := make(model.Header, 0, len(src.Header())+2)
	header = append(header, reportFileColumn, reportColsColumn)
	header = append(header, src.Header()...)

	union := rejects.Union()
	rows := make([]model.Row, 0, len(union))
	for _, row := range src.Rows() {
		if !union.Has(row.ID) {
			continue
		}
		cols := rejects.ColumnsFor(row.ID, order)
		cells := make([]model.Cell, 0, len(header))
		cells = append(cells,
			model.NewCell(chunkID),
			model.NewCell(strings.Join(cols, reportColsSeparator)),
		)
		cells = append(cells, row.Cells...)
		rows = append(rows, model.NewRow(row.ID, cells))
	}
	return model.NewTableFromRows(name, header, rows)
}

// fieldNames returns the column names of a field set in evaluation
// order.
func fieldNames(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// cleanColumns returns the table's columns with shadow columns
// excluded, in header order.
func cleanColumns(tbl *model.Table) []string {
	var cols []string
	for _, name := range tbl.Header() {
		if strings.HasSuffix(name, ShadowSuffix) {
			continue
		}
		cols = append(cols, name)
	}
	return cols
}
