package model

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type CreateStatusRequest struct {
	Name string `json:"name"`
}

type CreateBranchRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	StatusID string `json:"status_id"`
}

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
	BranchID   string `json:"branch_id"`
	RoleID     string `json:"role_id"`
	StatusID   string `json:"status_id"`
}

type UpdateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   string `json:"role_id"`
	StatusID string `json:"status_id"`
}

type CreateShelfTypeRequest struct {
	Size        string  `json:"size"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type CreateShelfRequest struct {
	AccountNumber string `json:"account_number"`
	Status        string `json:"status"`
	ShelfTypeID   string `json:"shelf_type_id"`
}

type CreateClientRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	StartDate   time.Time `json:"start_date"`
	ShelfID     string    `json:"shelf_id"`
}

type CreatePaymentMethodRequest struct {
	Name string `json:"name"`
}

type CreatePaymentRequest struct {
	PaymentMethodID string    `json:"payment_method_id"`
	ShelfID         string    `json:"shelf_id"`
	Amount          float64   `json:"amount"`
	PaymentDate     time.Time `json:"payment_date"`
	Status          string    `json:"status"`
}
