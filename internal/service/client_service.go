package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rent-a-shelf/internal/model"
)

type ClientRepo interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, c model.Client) error
	List(ctx context.Context) ([]model.Client, error)
}

type ClientService struct {
	repo ClientRepo
}

func NewClientService(repo ClientRepo) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return model.Client{}, model.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return model.Client{}, storeFault(err)
	}
	if exists {
		return model.Client{}, model.ErrClientAlreadyExists
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}

	client := model.Client{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		StartDate:   startDate,
		ShelfID:     strings.TrimSpace(req.ShelfID),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return model.Client{}, storeFault(err)
	}

	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return clients, nil
}
