package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"rent-a-shelf/internal/model"
)

type ShelfRepo interface {
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	Create(ctx context.Context, s model.Shelf) error
	List(ctx context.Context) ([]model.Shelf, error)
}

type ShelfTypeRepo interface {
	ExistsBySizeAndDescription(ctx context.Context, size string, description string) (bool, error)
	Create(ctx context.Context, st model.ShelfType) error
	List(ctx context.Context) ([]model.ShelfType, error)
}

type ShelfService struct {
	shelves    ShelfRepo
	shelfTypes ShelfTypeRepo
}

func NewShelfService(shelves ShelfRepo, shelfTypes ShelfTypeRepo) *ShelfService {
	return &ShelfService{shelves: shelves, shelfTypes: shelfTypes}
}

func (s *ShelfService) CreateShelf(ctx context.Context, req model.CreateShelfRequest) (model.Shelf, error) {
	accountNumber := strings.TrimSpace(req.AccountNumber)
	status := strings.TrimSpace(req.Status)
	if accountNumber == "" || status == "" {
		return model.Shelf{}, model.ErrInvalidInput
	}

	exists, err := s.shelves.ExistsByAccountNumber(ctx, accountNumber)
	if err != nil {
		return model.Shelf{}, storeFault(err)
	}
	if exists {
		return model.Shelf{}, model.ErrShelfAlreadyExists
	}

	shelf := model.Shelf{
		ID:            uuid.NewString(),
		AccountNumber: accountNumber,
		Status:        status,
		ShelfTypeID:   strings.TrimSpace(req.ShelfTypeID),
	}

	if err := s.shelves.Create(ctx, shelf); err != nil {
		return model.Shelf{}, storeFault(err)
	}

	return shelf, nil
}

func (s *ShelfService) ListShelves(ctx context.Context) ([]model.Shelf, error) {
	shelves, err := s.shelves.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return shelves, nil
}

func (s *ShelfService) CreateShelfType(ctx context.Context, req model.CreateShelfTypeRequest) (model.ShelfType, error) {
	size := strings.TrimSpace(req.Size)
	if size == "" || req.Price <= 0 {
		return model.ShelfType{}, model.ErrInvalidInput
	}

	exists, err := s.shelfTypes.ExistsBySizeAndDescription(ctx, size, req.Description)
	if err != nil {
		return model.ShelfType{}, storeFault(err)
	}
	if exists {
		return model.ShelfType{}, model.ErrShelfTypeAlreadyExists
	}

	shelfType := model.ShelfType{
		ID:          uuid.NewString(),
		Size:        size,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
	}

	if err := s.shelfTypes.Create(ctx, shelfType); err != nil {
		return model.ShelfType{}, storeFault(err)
	}

	return shelfType, nil
}

func (s *ShelfService) ListShelfTypes(ctx context.Context) ([]model.ShelfType, error) {
	types, err := s.shelfTypes.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return types, nil
}
