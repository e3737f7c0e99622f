package tablescrub

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Register the pure-Go SQLite driver under the "sqlite" name.
	_ "modernc.org/sqlite"

	"github.com/tablescrub/tablescrub/domain/model"
)

// SaveToSQLite persists tables into a SQLite database file, one SQL
// table per input table, with column types inferred from the data.
// Null cells become SQL NULL. Existing tables with the same names are
// replaced so that re-running a chunk is idempotent.
func SaveToSQLite(ctx context.Context, dbPath string, tables ...*model.Table) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	for _, tbl := range tables {
		if err := saveTable(ctx, db, tbl); err != nil {
			return fmt.Errorf("failed to save table %s: %w", tbl.Name(), err)
		}
	}
	return nil
}

func saveTable(ctx context.Context, db *sql.DB, tbl *model.Table) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS [%s]`, tbl.Name())); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, buildCreateTableQuery(tbl)); err != nil {
		return err
	}

	if tbl.RowCount() > 0 {
		stmt, err := tx.PrepareContext(ctx, buildInsertQuery(tbl))
		if err != nil {
			return err
		}
		defer stmt.Close()

		args := make([]any, len(tbl.Header()))
		for _, row := range tbl.Rows() {
			for i, cell := range row.Cells {
				if cell.IsNull() {
					args[i] = nil
					continue
				}
				args[i] = cell.Str
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// buildCreateTableQuery constructs a CREATE TABLE query with column
// types inferred from the table's data.
func buildCreateTableQuery(tbl *model.Table) string {
	info := model.InferColumnsInfo(tbl)
	columns := make([]string, 0, len(info))
	for _, col := range info {
		columns = append(columns, fmt.Sprintf(`[%s] %s`, col.Name, col.Type))
	}
	return fmt.Sprintf(
		`CREATE TABLE [%s] (%s)`,
		tbl.Name(),
		strings.Join(columns, ", "),
	)
}

// buildInsertQuery constructs an INSERT query for the given table.
func buildInsertQuery(tbl *model.Table) string {
	placeholders := make([]string, len(tbl.Header()))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf(
		`INSERT INTO [%s] VALUES (%s)`,
		tbl.Name(),
		strings.Join(placeholders, ", "),
	)
}
