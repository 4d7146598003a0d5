package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rent-a-shelf/internal/model"
)

// EmployeeRepository is the credential store of the auth flow: the point
// lookup by email and the single-row password update both live here.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `id, name, email, national_id, password_hash,
	COALESCE(branch_id, ''), COALESCE(role_id, ''), COALESCE(status_id, ''), created_at, updated_at`

func scanEmployee(row pgx.Row) (model.Employee, error) {
	var e model.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.NationalID, &e.PasswordHash,
		&e.BranchID, &e.RoleID, &e.StatusID, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (model.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Employee{}, model.ErrEmployeeNotFound
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("find employee by id: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (model.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email)))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Employee{}, model.ErrEmployeeNotFound
	}
	if err != nil {
		return model.Employee{}, fmt.Errorf("find employee by email: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) ExistsByEmailOrNationalID(ctx context.Context, email string, nationalID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE lower(email) = lower($1) OR national_id = $2)`,
		strings.TrimSpace(email), strings.TrimSpace(nationalID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check employee exists: %w", err)
	}
	return exists, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e model.Employee) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO employees (id, name, email, national_id, password_hash, branch_id, role_id, status_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)`,
		e.ID, e.Name, e.Email, e.NationalID, e.PasswordHash, e.BranchID, e.RoleID, e.StatusID, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e model.Employee) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE employees SET name = $2, email = $3, role_id = NULLIF($4, ''), status_id = NULLIF($5, ''), updated_at = $6
		 WHERE id = $1`,
		e.ID, e.Name, e.Email, e.RoleID, e.StatusID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}
	return nil
}

// UpdatePasswordHash replaces the stored hash in a single statement, so
// concurrent logins see either the old or the new hash, never a partial
// write.
func (r *EmployeeRepository) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE employees SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]model.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
