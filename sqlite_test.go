package tablescrub

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveToSQLite(t *testing.T) {
	t.Parallel()

	tbl := buildChicagoTable(t,
		nil,
		map[string]string{"iucr": "08-6"},
	)
	result, err := Scrub(tbl, "chunk_000", ChicagoCrimeRuleset())
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "scrub.db")
	ctx := context.Background()
	require.NoError(t, SaveToSQLite(ctx, dbPath,
		result.Clean, result.HardRejects, result.SoftRejects))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM [chunk_000]`).Scan(&count))
	assert.Equal(t, 2, count)

	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM [soft_rejects]`).Scan(&count))
	assert.Equal(t, 1, count)

	// Nulled values round-trip as SQL NULL.
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM [chunk_000] WHERE iucr IS NULL`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSaveToSQLiteReplacesExistingTable(t *testing.T) {
	t.Parallel()

	tbl := buildTable(t, []string{"a"}, []string{"1"}, []string{"2"})
	dbPath := filepath.Join(t.TempDir(), "scrub.db")
	ctx := context.Background()

	require.NoError(t, SaveToSQLite(ctx, dbPath, tbl))
	require.NoError(t, SaveToSQLite(ctx, dbPath, tbl))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	var count int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM [test]`).Scan(&count))
	assert.Equal(t, 2, count)
}
