package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rent-a-shelf/internal/model"
)

type PaymentMethodRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentMethodRepository(pool *pgxpool.Pool) *PaymentMethodRepository {
	return &PaymentMethodRepository{pool: pool}
}

func (r *PaymentMethodRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payment_methods WHERE lower(name) = lower($1))`,
		strings.TrimSpace(name)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payment method exists: %w", err)
	}
	return exists, nil
}

func (r *PaymentMethodRepository) Create(ctx context.Context, pm model.PaymentMethod) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payment_methods (id, name) VALUES ($1, $2)`,
		pm.ID, pm.Name)
	if err != nil {
		return fmt.Errorf("create payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepository) List(ctx context.Context) ([]model.PaymentMethod, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	methods := make([]model.PaymentMethod, 0)
	for rows.Next() {
		var pm model.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, pm)
	}
	return methods, rows.Err()
}

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// ExistsDuplicate guards against double-recording the same payment
// (same shelf, amount and date).
func (r *PaymentRepository) ExistsDuplicate(ctx context.Context, shelfID string, amount float64, paymentDate time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payments WHERE shelf_id = $1 AND amount = $2 AND payment_date = $3)`,
		shelfID, amount, paymentDate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payment exists: %w", err)
	}
	return exists, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p model.Payment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (id, payment_method_id, shelf_id, amount, payment_date, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`,
		p.ID, p.PaymentMethodID, p.ShelfID, p.Amount, p.PaymentDate, p.Status)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, payment_method_id, COALESCE(shelf_id, ''), amount, payment_date, status
		 FROM payments ORDER BY payment_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]model.Payment, 0)
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.PaymentMethodID, &p.ShelfID, &p.Amount, &p.PaymentDate, &p.Status); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
