// Package repo contains all database access logic for the trip planner.
// Each resource has its own file with an interface and a Postgres implementation.
// Trip data is written by hand in the hosted database, so the repos only read.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/eeplog/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StayRepo defines the read operations for lodging stays.
// The service layer depends on this interface, not the Postgres implementation.
type StayRepo interface {
	// List returns all stays ordered by check_in ascending, ties by id.
	List(ctx context.Context) ([]domain.LodgingStay, error)

	// GetByID retrieves a single stay by its UUID primary key.
	// Returns domain.ErrNotFound if no stay with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.LodgingStay, error)
}

// pgStayRepo is the Postgres implementation of StayRepo.
type pgStayRepo struct {
	db db
}

// NewStayRepo constructs a StayRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStayRepo(db db) StayRepo {
	return &pgStayRepo{db: db}
}

const stayColumns = `id, city, check_in, check_out, beds, booking_link`

// List returns every stay, earliest check-in first.
func (r *pgStayRepo) List(ctx context.Context) ([]domain.LodgingStay, error) {
	const q = `
		SELECT ` + stayColumns + `
		FROM accommodations
		ORDER BY check_in ASC, id ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StayRepo.List: %w", err)
	}
	defer rows.Close()

	var stays []domain.LodgingStay
	for rows.Next() {
		s, err := scanStay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StayRepo.List: scan: %w", err)
		}
		stays = append(stays, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StayRepo.List: rows: %w", err)
	}

	return stays, nil
}

// GetByID retrieves a stay by primary key.
func (r *pgStayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.LodgingStay, error) {
	const q = `
		SELECT ` + stayColumns + `
		FROM accommodations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanStay(row)
	if err != nil {
		return domain.LodgingStay{}, fmt.Errorf("repo.StayRepo.GetByID: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanStay maps a single database row into a domain.LodgingStay.
// It handles the UUID, DATE and nullable booking_link conversions.
func scanStay(s scanner) (domain.LodgingStay, error) {
	var (
		st       domain.LodgingStay
		id       pgtype.UUID
		checkIn  pgtype.Date
		checkOut pgtype.Date
		link     pgtype.Text
	)

	err := s.Scan(&id, &st.City, &checkIn, &checkOut, &st.Beds, &link)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LodgingStay{}, domain.ErrNotFound
		}
		return domain.LodgingStay{}, err
	}

	st.ID = uuid.UUID(id.Bytes)
	st.CheckIn = checkIn.Time
	st.CheckOut = checkOut.Time
	st.BookingLink = link.String

	return st, nil
}
