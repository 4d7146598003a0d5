package handler

import (
	"encoding/json"
	"net/http"

	"rent-a-shelf/internal/model"
	"rent-a-shelf/internal/service"
	"rent-a-shelf/pkg/apierror"
)

type BranchHandler struct {
	service *service.BranchService
}

func NewBranchHandler(service *service.BranchService) *BranchHandler {
	return &BranchHandler{service: service}
}

func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	branch, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, branch)
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, branches)
}
