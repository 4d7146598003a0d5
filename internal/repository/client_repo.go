package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"rent-a-shelf/internal/model"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE lower(email) = lower($1))`,
		strings.TrimSpace(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check client exists: %w", err)
	}
	return exists, nil
}

func (r *ClientRepository) Create(ctx context.Context, c model.Client) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO clients (id, name, email, phone_number, start_date, shelf_id)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`,
		c.ID, c.Name, c.Email, c.PhoneNumber, c.StartDate, c.ShelfID)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(phone_number, ''), start_date, COALESCE(shelf_id, '')
		 FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.StartDate, &c.ShelfID); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
