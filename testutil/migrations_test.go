package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/eeplog/backend/migrations"
	"github.com/pkordes/eeplog/backend/testutil"
)

var tables = []string{"accommodations", "activities"}

// TestMigrations applies every migration, checks the tables exist, rolls all
// of them back and checks the tables are gone. It resets to version 0 first
// because another package's TestMain may already have migrated the shared DB.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := migrations.NewProvider(db)
	require.NoError(t, err, "create goose provider")

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, 2)
	for _, table := range tables {
		assert.True(t, tableExists(t, db, table), "expected table %q to exist", table)
	}

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	for _, table := range tables {
		assert.False(t, tableExists(t, db, table), "expected table %q to be dropped", table)
	}

	// Leave the schema migrated for anything that runs after us.
	require.NoError(t, migrations.Up(ctx, db))
}

func TestMigrations_RejectInvalidRows(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()
	require.NoError(t, migrations.Up(ctx, db))

	for name, q := range map[string]string{
		"blank city": `INSERT INTO accommodations (city, check_in, check_out, beds) VALUES (' ', '2025-11-07', '2025-11-09', 1)`,
		"zero beds":  `INSERT INTO accommodations (city, check_in, check_out, beds) VALUES ('Waco', '2025-11-07', '2025-11-09', 0)`,
		"no title":   `INSERT INTO activities (date, title) VALUES ('2025-11-07', '')`,
	} {
		t.Run(name, func(t *testing.T) {
			tx, err := db.BeginTx(ctx, nil)
			require.NoError(t, err)
			defer tx.Rollback() //nolint:errcheck

			_, err = tx.ExecContext(ctx, q)
			assert.Error(t, err)
		})
	}
}

// tableExists reports whether the named table is in the public schema.
func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists), "check table %q", table)
	return exists
}
