package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"rent-a-shelf/internal/middleware"
	"rent-a-shelf/internal/model"
	"rent-a-shelf/internal/service"
	"rent-a-shelf/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	tokens, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, tokens)
}

// RequestReset surfaces 404 on unknown email, matching the original API
// contract. A hardened variant would answer uniformly to avoid account
// enumeration.
func (h *AuthHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if strings.TrimSpace(payload.Email) == "" {
		writeError(w, apierror.New("BAD_REQUEST", "email is required", "email", http.StatusBadRequest))
		return
	}

	if err := h.service.RequestReset(r.Context(), payload.Email); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusAccepted, map[string]any{
		"accepted": true,
		"message":  "Password reset email has been sent. Link will expire in 15 minutes.",
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	payload.Token = strings.TrimSpace(payload.Token)
	if payload.Token == "" {
		writeError(w, apierror.New("BAD_REQUEST", "token is required", "token", http.StatusBadRequest))
		return
	}
	if payload.NewPassword == "" {
		writeError(w, apierror.New("BAD_REQUEST", "new_password is required", "new_password", http.StatusBadRequest))
		return
	}

	if err := h.service.CompleteReset(r.Context(), payload.Token, payload.NewPassword, payload.ConfirmPassword); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"reset": true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	employee, ok := middleware.EmployeeFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	writeSuccess(w, http.StatusOK, employee)
}
