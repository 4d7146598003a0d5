package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"rent-a-shelf/internal/model"
)

type BranchRepo interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, b model.Branch) error
	List(ctx context.Context) ([]model.Branch, error)
}

type BranchService struct {
	repo BranchRepo
}

func NewBranchService(repo BranchRepo) *BranchService {
	return &BranchService{repo: repo}
}

func (s *BranchService) Create(ctx context.Context, req model.CreateBranchRequest) (model.Branch, error) {
	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)
	if name == "" || location == "" {
		return model.Branch{}, model.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return model.Branch{}, storeFault(err)
	}
	if exists {
		return model.Branch{}, model.ErrBranchAlreadyExists
	}

	branch := model.Branch{
		ID:       uuid.NewString(),
		Name:     name,
		Location: location,
		StatusID: strings.TrimSpace(req.StatusID),
	}

	if err := s.repo.Create(ctx, branch); err != nil {
		return model.Branch{}, storeFault(err)
	}

	return branch, nil
}

func (s *BranchService) List(ctx context.Context) ([]model.Branch, error) {
	branches, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return branches, nil
}
