package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rent-a-shelf/internal/model"
)

type PaymentMethodRepo interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, pm model.PaymentMethod) error
	List(ctx context.Context) ([]model.PaymentMethod, error)
}

type PaymentRepo interface {
	ExistsDuplicate(ctx context.Context, shelfID string, amount float64, paymentDate time.Time) (bool, error)
	Create(ctx context.Context, p model.Payment) error
	List(ctx context.Context) ([]model.Payment, error)
}

type PaymentService struct {
	methods  PaymentMethodRepo
	payments PaymentRepo
}

func NewPaymentService(methods PaymentMethodRepo, payments PaymentRepo) *PaymentService {
	return &PaymentService{methods: methods, payments: payments}
}

func (s *PaymentService) CreateMethod(ctx context.Context, req model.CreatePaymentMethodRequest) (model.PaymentMethod, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.PaymentMethod{}, model.ErrInvalidInput
	}

	exists, err := s.methods.ExistsByName(ctx, name)
	if err != nil {
		return model.PaymentMethod{}, storeFault(err)
	}
	if exists {
		return model.PaymentMethod{}, model.ErrPaymentMethodExists
	}

	method := model.PaymentMethod{ID: uuid.NewString(), Name: name}
	if err := s.methods.Create(ctx, method); err != nil {
		return model.PaymentMethod{}, storeFault(err)
	}

	return method, nil
}

func (s *PaymentService) ListMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	methods, err := s.methods.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return methods, nil
}

func (s *PaymentService) RecordPayment(ctx context.Context, req model.CreatePaymentRequest) (model.Payment, error) {
	if strings.TrimSpace(req.PaymentMethodID) == "" || req.Amount <= 0 {
		return model.Payment{}, model.ErrInvalidInput
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	duplicate, err := s.payments.ExistsDuplicate(ctx, strings.TrimSpace(req.ShelfID), req.Amount, paymentDate)
	if err != nil {
		return model.Payment{}, storeFault(err)
	}
	if duplicate {
		return model.Payment{}, model.ErrPaymentAlreadyExists
	}

	payment := model.Payment{
		ID:              uuid.NewString(),
		PaymentMethodID: strings.TrimSpace(req.PaymentMethodID),
		ShelfID:         strings.TrimSpace(req.ShelfID),
		Amount:          req.Amount,
		PaymentDate:     paymentDate,
		Status:          strings.TrimSpace(req.Status),
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return model.Payment{}, storeFault(err)
	}

	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return payments, nil
}
