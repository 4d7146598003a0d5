package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"rent-a-shelf/internal/model"
)

// Postgres error code for foreign key violations.
const pgForeignKeyViolation = "23503"

type StatusRepository struct {
	pool *pgxpool.Pool
}

func NewStatusRepository(pool *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{pool: pool}
}

func (r *StatusRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM statuses WHERE lower(name) = lower($1))`,
		strings.TrimSpace(name)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check status exists: %w", err)
	}
	return exists, nil
}

func (r *StatusRepository) Create(ctx context.Context, s model.Status) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO statuses (id, name) VALUES ($1, $2)`,
		s.ID, s.Name)
	if err != nil {
		return fmt.Errorf("create status: %w", err)
	}
	return nil
}

// Delete refuses to remove a status that branches or employees still
// reference, surfacing the constraint instead of a raw driver error.
func (r *StatusRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM statuses WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.ErrStatusInUse
		}
		return fmt.Errorf("delete status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrStatusNotFound
	}
	return nil
}

func (r *StatusRepository) List(ctx context.Context) ([]model.Status, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM statuses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()

	statuses := make([]model.Status, 0)
	for rows.Next() {
		var s model.Status
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
