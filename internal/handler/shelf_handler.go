package handler

import (
	"encoding/json"
	"net/http"

	"rent-a-shelf/internal/model"
	"rent-a-shelf/internal/service"
	"rent-a-shelf/pkg/apierror"
)

type ShelfHandler struct {
	service *service.ShelfService
}

func NewShelfHandler(service *service.ShelfService) *ShelfHandler {
	return &ShelfHandler{service: service}
}

func (h *ShelfHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateShelfRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	shelf, err := h.service.CreateShelf(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, shelf)
}

func (h *ShelfHandler) List(w http.ResponseWriter, r *http.Request) {
	shelves, err := h.service.ListShelves(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, shelves)
}

func (h *ShelfHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateShelfTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	shelfType, err := h.service.CreateShelfType(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, shelfType)
}

func (h *ShelfHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListShelfTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, types)
}
