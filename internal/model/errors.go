package model

import "errors"

var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrMissingSubject     = errors.New("token subject missing")
	ErrWrongPurpose       = errors.New("token purpose mismatch")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	// Infrastructure errors
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDeliveryFailed   = errors.New("reset delivery failed")

	// Entity errors
	ErrStatusNotFound         = errors.New("status not found")
	ErrStatusAlreadyExists    = errors.New("status already exists")
	ErrStatusInUse            = errors.New("status is referenced by other records")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeAlreadyExists  = errors.New("employee already exists")
	ErrBranchNotFound         = errors.New("branch not found")
	ErrBranchAlreadyExists    = errors.New("branch already exists")
	ErrShelfNotFound          = errors.New("shelf not found")
	ErrShelfAlreadyExists     = errors.New("shelf already exists")
	ErrShelfTypeNotFound      = errors.New("shelf type not found")
	ErrShelfTypeAlreadyExists = errors.New("shelf type already exists")
	ErrClientNotFound         = errors.New("client not found")
	ErrClientAlreadyExists    = errors.New("client already exists")
	ErrPaymentMethodNotFound  = errors.New("payment method not found")
	ErrPaymentMethodExists    = errors.New("payment method already exists")
	ErrPaymentAlreadyExists   = errors.New("payment already recorded")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
