package handler

import (
	"encoding/json"
	"net/http"

	"rent-a-shelf/internal/model"
	"rent-a-shelf/internal/service"
	"rent-a-shelf/pkg/apierror"
)

type PaymentHandler struct {
	service *service.PaymentService
}

func NewPaymentHandler(service *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) CreateMethod(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreatePaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	method, err := h.service.CreateMethod(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, method)
}

func (h *PaymentHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.ListMethods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, methods)
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, payments)
}
