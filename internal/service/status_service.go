package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"rent-a-shelf/internal/model"
)

type StatusRepo interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, s model.Status) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Status, error)
}

// StatusService manages the status lookup table that branches and
// employees reference.
type StatusService struct {
	repo StatusRepo
}

func NewStatusService(repo StatusRepo) *StatusService {
	return &StatusService{repo: repo}
}

func (s *StatusService) Create(ctx context.Context, req model.CreateStatusRequest) (model.Status, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.Status{}, model.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return model.Status{}, storeFault(err)
	}
	if exists {
		return model.Status{}, model.ErrStatusAlreadyExists
	}

	status := model.Status{ID: uuid.NewString(), Name: name}
	if err := s.repo.Create(ctx, status); err != nil {
		return model.Status{}, storeFault(err)
	}

	return status, nil
}

func (s *StatusService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.ErrInvalidInput
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrStatusNotFound) || errors.Is(err, model.ErrStatusInUse) {
			return err
		}
		return storeFault(err)
	}

	return nil
}

func (s *StatusService) List(ctx context.Context) ([]model.Status, error) {
	statuses, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return statuses, nil
}
