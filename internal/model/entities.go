package model

import "time"

type Branch struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	StatusID string `json:"status_id"`
}

type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShelfType struct {
	ID          string  `json:"id"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type Shelf struct {
	ID            string `json:"id"`
	AccountNumber string `json:"account_number"`
	Status        string `json:"status"`
	ShelfTypeID   string `json:"shelf_type_id"`
}

type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	StartDate   time.Time `json:"start_date"`
	ShelfID     string    `json:"shelf_id"`
}

type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Payment struct {
	ID              string    `json:"id"`
	PaymentMethodID string    `json:"payment_method_id"`
	ShelfID         string    `json:"shelf_id"`
	Amount          float64   `json:"amount"`
	PaymentDate     time.Time `json:"payment_date"`
	Status          string    `json:"status"`
}
