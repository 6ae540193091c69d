package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/eeplog/backend/internal/domain"
)

// ActivityRepo defines the read operations for activities.
type ActivityRepo interface {
	// List returns all activities ordered by date ascending, ties by id.
	List(ctx context.Context) ([]domain.Activity, error)
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

func (r *pgActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	const q = `
		SELECT id, date, title, description, link
		FROM activities
		ORDER BY date ASC, id ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		var (
			a           domain.Activity
			id          pgtype.UUID
			date        pgtype.Date
			description pgtype.Text
			link        pgtype.Text
		)
		if err := rows.Scan(&id, &date, &a.Title, &description, &link); err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.List: scan: %w", err)
		}
		a.ID = uuid.UUID(id.Bytes)
		a.Date = date.Time
		a.Description = description.String
		a.Link = link.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.List: rows: %w", err)
	}

	return out, nil
}
