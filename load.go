package tablescrub

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"

	"github.com/tablescrub/tablescrub/domain/model"
)

// spaceRunRE matches runs of spaces, for header normalization and
// whitespace cleanup.
var spaceRunRE = regexp.MustCompile(` +`)

// LoadChunk reads one chunk file into a table. Supported formats are
// CSV, TSV, XLSX, and Parquet, optionally compressed with gz, bz2,
// xz, or zst.
//
// Every value is loaded as an untyped string; empty values become
// null. No type coercion is performed, which the regex-based
// validation relies on. Column names are normalized to lower case
// with spaces replaced by underscores, and values have excess inner
// and outer whitespace removed.
func LoadChunk(path string) (*model.Table, error) {
	fileType := detectFileType(path)
	if fileType == FileTypeUnsupported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	reader, cleanup, err := openFileReader(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cleanup()
	}()

	return LoadChunkFromReader(reader, fileType, chunkNameFromPath(path))
}

// LoadChunkFromReader reads one chunk from an already-decompressed
// reader. The name becomes the table name.
func LoadChunkFromReader(r io.Reader, fileType FileType, name string) (*model.Table, error) {
	switch fileType {
	case FileTypeCSV:
		return parseDelimited(r, ',', name)
	case FileTypeTSV:
		return parseDelimited(r, '\t', name)
	case FileTypeXLSX:
		return parseXLSX(r, name)
	case FileTypeParquet:
		return parseParquet(r, name)
	default:
		return nil, fmt.Errorf("%w: file type %d", ErrUnsupportedFormat, fileType)
	}
}

// parseDelimited parses CSV or TSV data.
func parseDelimited(r io.Reader, comma rune, name string) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma

	rawHeader, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyData
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	header := normalizeHeader(rawHeader)

	var records [][]model.Cell
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		records = append(records, cellsFromRaw(record))
	}

	return model.NewTable(name, header, records)
}

// parseXLSX parses the first sheet of an XLSX workbook.
func parseXLSX(r io.Reader, name string) (*model.Table, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX data: %w", err)
	}
	defer func() {
		_ = workbook.Close()
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyData
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read XLSX sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyData
	}

	header := normalizeHeader(rows[0])
	records := make([][]model.Cell, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// excelize trims trailing empty cells; pad to header width
		for len(row) < len(header) {
			row = append(row, "")
		}
		if len(row) > len(header) {
			return nil, fmt.Errorf("%w: row has %d cells, header has %d", ErrInvalidData, len(row), len(header))
		}
		records = append(records, cellsFromRaw(row))
	}

	return model.NewTable(name, header, records)
}

// parseParquet parses Parquet data. The whole payload is buffered
// because Parquet requires random access.
func parseParquet(r io.Reader, name string) (*model.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	arrowTable, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet table: %w", err)
	}
	defer arrowTable.Release()

	schema := arrowTable.Schema()
	rawHeader := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		rawHeader[i] = field.Name
	}
	header := normalizeHeader(rawHeader)

	var records [][]model.Cell
	tableReader := array.NewTableReader(arrowTable, 0)
	defer tableReader.Release()

	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := int(batch.NumRows())
		for i := range numRows {
			cells := make([]model.Cell, batch.NumCols())
			for j, col := range batch.Columns() {
				if col.IsNull(i) {
					cells[j] = model.NullCell()
					continue
				}
				cells[j] = cleanCell(col.ValueStr(i))
			}
			records = append(records, cells)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("error reading parquet records: %w", err)
	}

	return model.NewTable(name, header, records)
}

// normalizeHeader converts column names to lower case and replaces
// space runs with underscores.
func normalizeHeader(raw []string) model.Header {
	names := make([]string, len(raw))
	for i, name := range raw {
		name = strings.ToLower(strings.TrimSpace(name))
		names[i] = spaceRunRE.ReplaceAllString(name, "_")
	}
	return model.NewHeader(names)
}

// cellsFromRaw converts one raw record into cells, collapsing excess
// whitespace and treating empty values as null.
func cellsFromRaw(record []string) []model.Cell {
	cells := make([]model.Cell, len(record))
	for i, v := range record {
		cells[i] = cleanCell(v)
	}
	return cells
}

// cleanCell removes excess inner and outer whitespace from a raw
// value. Values that are empty after trimming are null.
func cleanCell(v string) model.Cell {
	v = strings.TrimSpace(v)
	if v == "" {
		return model.NullCell()
	}
	return model.NewCell(spaceRunRE.ReplaceAllString(v, " "))
}
