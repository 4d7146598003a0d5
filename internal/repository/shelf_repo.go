package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"rent-a-shelf/internal/model"
)

type ShelfRepository struct {
	pool *pgxpool.Pool
}

func NewShelfRepository(pool *pgxpool.Pool) *ShelfRepository {
	return &ShelfRepository{pool: pool}
}

func (r *ShelfRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM shelves WHERE account_number = $1)`,
		strings.TrimSpace(accountNumber)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check shelf exists: %w", err)
	}
	return exists, nil
}

func (r *ShelfRepository) Create(ctx context.Context, s model.Shelf) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO shelves (id, account_number, status, shelf_type_id)
		 VALUES ($1, $2, $3, NULLIF($4, ''))`,
		s.ID, s.AccountNumber, s.Status, s.ShelfTypeID)
	if err != nil {
		return fmt.Errorf("create shelf: %w", err)
	}
	return nil
}

func (r *ShelfRepository) List(ctx context.Context) ([]model.Shelf, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account_number, status, COALESCE(shelf_type_id, '') FROM shelves ORDER BY account_number`)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	defer rows.Close()

	shelves := make([]model.Shelf, 0)
	for rows.Next() {
		var s model.Shelf
		if err := rows.Scan(&s.ID, &s.AccountNumber, &s.Status, &s.ShelfTypeID); err != nil {
			return nil, fmt.Errorf("scan shelf: %w", err)
		}
		shelves = append(shelves, s)
	}
	return shelves, rows.Err()
}

type ShelfTypeRepository struct {
	pool *pgxpool.Pool
}

func NewShelfTypeRepository(pool *pgxpool.Pool) *ShelfTypeRepository {
	return &ShelfTypeRepository{pool: pool}
}

func (r *ShelfTypeRepository) ExistsBySizeAndDescription(ctx context.Context, size string, description string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM shelf_types WHERE lower(size) = lower($1) AND lower(description) = lower($2))`,
		strings.TrimSpace(size), strings.TrimSpace(description)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check shelf type exists: %w", err)
	}
	return exists, nil
}

func (r *ShelfTypeRepository) Create(ctx context.Context, st model.ShelfType) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO shelf_types (id, size, description, price)
		 VALUES ($1, $2, $3, $4)`,
		st.ID, st.Size, st.Description, st.Price)
	if err != nil {
		return fmt.Errorf("create shelf type: %w", err)
	}
	return nil
}

func (r *ShelfTypeRepository) List(ctx context.Context) ([]model.ShelfType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, size, description, price FROM shelf_types ORDER BY size`)
	if err != nil {
		return nil, fmt.Errorf("list shelf types: %w", err)
	}
	defer rows.Close()

	types := make([]model.ShelfType, 0)
	for rows.Next() {
		var st model.ShelfType
		if err := rows.Scan(&st.ID, &st.Size, &st.Description, &st.Price); err != nil {
			return nil, fmt.Errorf("scan shelf type: %w", err)
		}
		types = append(types, st)
	}
	return types, rows.Err()
}
