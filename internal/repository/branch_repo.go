package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"rent-a-shelf/internal/model"
)

type BranchRepository struct {
	pool *pgxpool.Pool
}

func NewBranchRepository(pool *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{pool: pool}
}

func (r *BranchRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM branches WHERE lower(name) = lower($1))`,
		strings.TrimSpace(name)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check branch exists: %w", err)
	}
	return exists, nil
}

func (r *BranchRepository) Create(ctx context.Context, b model.Branch) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO branches (id, name, location, status_id)
		 VALUES ($1, $2, $3, NULLIF($4, ''))`,
		b.ID, b.Name, b.Location, b.StatusID)
	if err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	return nil
}

func (r *BranchRepository) List(ctx context.Context) ([]model.Branch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, location, COALESCE(status_id, '') FROM branches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	branches := make([]model.Branch, 0)
	for rows.Next() {
		var b model.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.StatusID); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}
