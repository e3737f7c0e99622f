package tablescrub

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tablescrub/tablescrub/domain/model"
)

// WriteTable writes a table to path using the given options. Null
// cells are written as empty strings. When an index label is set, the
// row identifier is prepended as the first column under that name.
func WriteTable(path string, tbl *model.Table, opts DumpOptions) error {
	writer, cleanup, err := createFileWriter(path, opts.Compression())
	if err != nil {
		return err
	}

	csvWriter := csv.NewWriter(writer)
	if opts.Format() == OutputFormatTSV {
		csvWriter.Comma = '\t'
	}

	header := tbl.Header()
	record := make([]string, 0, len(header)+1)
	if opts.IndexLabel() != "" {
		record = append(record, opts.IndexLabel())
	}
	record = append(record, header...)
	if err := csvWriter.Write(record); err != nil {
		_ = cleanup()
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range tbl.Rows() {
		record = record[:0]
		if opts.IndexLabel() != "" {
			record = append(record, strconv.Itoa(row.ID))
		}
		for _, cell := range row.Cells {
			if cell.IsNull() {
				record = append(record, "")
				continue
			}
			record = append(record, cell.Str)
		}
		if err := csvWriter.Write(record); err != nil {
			_ = cleanup()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		_ = cleanup()
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return cleanup()
}

// WriteArtifacts writes the three scrub outputs into a directory:
// clean data, the hard-reject report, and the soft-reject report. The
// reports carry a file_index column holding original row identifiers.
//
//	clean_<chunk>.csv
//	hard_rejects_<chunk>.csv
//	soft_rejects_<chunk>.csv
func WriteArtifacts(dir string, result *Result, opts DumpOptions) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := result.Clean.Name()
	ext := opts.FileExtension()

	cleanPath := filepath.Join(dir, fmt.Sprintf("clean_%s%s", base, ext))
	if err := WriteTable(cleanPath, result.Clean, opts); err != nil {
		return fmt.Errorf("failed to write clean data: %w", err)
	}

	reportOpts := opts.WithIndexLabel("file_index")
	for _, report := range []*model.Table{result.HardRejects, result.SoftRejects} {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s%s", report.Name(), base, ext))
		if err := WriteTable(path, report, reportOpts); err != nil {
			return fmt.Errorf("failed to write %s: %w", report.Name(), err)
		}
	}
	return nil
}
