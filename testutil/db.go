// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when TEST_DATABASE_URL is not
// set, so unit tests run without a database.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
)

// NewPool opens a *pgxpool.Pool against TEST_DATABASE_URL, skipping the test
// when it is unset. The pool is closed when the test finishes.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction that is rolled back when the test finishes.
// Repos built on it see the rows a test inserts and nothing outlives the test.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	pool := NewPool(t)
	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// InsertStay inserts an accommodations row and returns its generated id.
// Dates are YYYY-MM-DD keys; an empty link is stored as NULL.
func InsertStay(t *testing.T, tx pgx.Tx, city, checkIn, checkOut string, beds int, link string) uuid.UUID {
	t.Helper()

	const q = `
		INSERT INTO accommodations (city, check_in, check_out, beds, booking_link)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id`

	var id uuid.UUID
	if err := tx.QueryRow(context.Background(), q, city, mustDate(t, checkIn), mustDate(t, checkOut), beds, link).Scan(&id); err != nil {
		t.Fatalf("testutil.InsertStay: %v", err)
	}
	return id
}

// InsertActivity inserts an activities row and returns its generated id.
func InsertActivity(t *testing.T, tx pgx.Tx, date, title, description, link string) uuid.UUID {
	t.Helper()

	const q = `
		INSERT INTO activities (date, title, description, link)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id`

	var id uuid.UUID
	if err := tx.QueryRow(context.Background(), q, mustDate(t, date), title, description, link).Scan(&id); err != nil {
		t.Fatalf("testutil.InsertActivity: %v", err)
	}
	return id
}

func mustDate(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", key)
	if err != nil {
		t.Fatalf("testutil: bad date %q: %v", key, err)
	}
	return d
}

// NewSQLDB opens a *sql.DB via the pgx stdlib driver, for goose.
// The connection is closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQLDB(requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for the given DSN and panics on any error.
// Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := openSQLDB(dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: " + err.Error())
	}
	return db
}

func openSQLDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// requireDSN returns TEST_DATABASE_URL, skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
	return dsn
}
