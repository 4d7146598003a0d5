package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"rent-a-shelf/internal/model"
	"rent-a-shelf/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid credentials"
	case errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenMalformed),
		errors.Is(err, model.ErrMissingSubject),
		errors.Is(err, model.ErrWrongPurpose):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid or expired token"
	case errors.Is(err, model.ErrPasswordMismatch):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Passwords do not match"
	case errors.Is(err, model.ErrStatusNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Status not found"
	case errors.Is(err, model.ErrEmployeeNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Employee not found"
	case errors.Is(err, model.ErrBranchNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Branch not found"
	case errors.Is(err, model.ErrShelfNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Shelf not found"
	case errors.Is(err, model.ErrShelfTypeNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Shelf type not found"
	case errors.Is(err, model.ErrClientNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Client not found"
	case errors.Is(err, model.ErrPaymentMethodNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Payment method not found"
	case errors.Is(err, model.ErrStatusAlreadyExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Status already exists"
	case errors.Is(err, model.ErrStatusInUse):
		status = http.StatusConflict
		body.Code = "CONFLICT"
		body.Message = "Status is still referenced by other records"
	case errors.Is(err, model.ErrEmployeeAlreadyExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Employee already exists"
	case errors.Is(err, model.ErrBranchAlreadyExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Branch already exists"
	case errors.Is(err, model.ErrShelfAlreadyExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Shelf already exists"
	case errors.Is(err, model.ErrShelfTypeAlreadyExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Shelf type already exists"
	case errors.Is(err, model.ErrClientAlreadyExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Client already exists"
	case errors.Is(err, model.ErrPaymentMethodExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Payment method already exists"
	case errors.Is(err, model.ErrPaymentAlreadyExists):
		status = http.StatusConflict
		body.Code = "ALREADY_EXISTS"
		body.Message = "Payment already recorded"
	case errors.Is(err, model.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		body.Code = "STORE_UNAVAILABLE"
		body.Message = "Record store is unavailable"
	case errors.Is(err, model.ErrDeliveryFailed):
		status = http.StatusBadGateway
		body.Code = "DELIVERY_FAILED"
		body.Message = "Could not deliver the reset message"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid input"
	default:
		// Log unclassified errors so they are visible in container logs.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}
