package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rent-a-shelf/internal/model"
	"rent-a-shelf/internal/password"
)

type EmployeeRepo interface {
	FindByID(ctx context.Context, id string) (model.Employee, error)
	ExistsByEmailOrNationalID(ctx context.Context, email string, nationalID string) (bool, error)
	Create(ctx context.Context, e model.Employee) error
	Update(ctx context.Context, e model.Employee) error
	List(ctx context.Context) ([]model.Employee, error)
}

type EmployeeService struct {
	repo EmployeeRepo
}

func NewEmployeeService(repo EmployeeRepo) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Register creates an employee record with the password stored only as a
// hash. Email and national id are natural keys.
func (s *EmployeeService) Register(ctx context.Context, req model.CreateEmployeeRequest) (model.Employee, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	nationalID := strings.TrimSpace(req.NationalID)
	if name == "" || email == "" || nationalID == "" || req.Password == "" {
		return model.Employee{}, model.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByEmailOrNationalID(ctx, email, nationalID)
	if err != nil {
		return model.Employee{}, storeFault(err)
	}
	if exists {
		return model.Employee{}, model.ErrEmployeeAlreadyExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return model.Employee{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	employee := model.Employee{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		NationalID:   nationalID,
		PasswordHash: hash,
		BranchID:     strings.TrimSpace(req.BranchID),
		RoleID:       strings.TrimSpace(req.RoleID),
		StatusID:     strings.TrimSpace(req.StatusID),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return model.Employee{}, storeFault(err)
	}

	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			return model.Employee{}, err
		}
		return model.Employee{}, storeFault(err)
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return employees, nil
}

// UpdateDetails applies the non-empty fields of the request. The password
// is not updatable here; that goes through the reset flow.
func (s *EmployeeService) UpdateDetails(ctx context.Context, id string, req model.UpdateEmployeeRequest) (model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			return model.Employee{}, err
		}
		return model.Employee{}, storeFault(err)
	}

	if v := strings.TrimSpace(req.Name); v != "" {
		employee.Name = v
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		employee.Email = v
	}
	if v := strings.TrimSpace(req.RoleID); v != "" {
		employee.RoleID = v
	}
	if v := strings.TrimSpace(req.StatusID); v != "" {
		employee.StatusID = v
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			return model.Employee{}, err
		}
		return model.Employee{}, storeFault(err)
	}

	return employee, nil
}
