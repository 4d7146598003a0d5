package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"rent-a-shelf/internal/model"
)

type sessionValidator interface {
	ValidateSession(ctx context.Context, sessionToken string) (model.Employee, error)
}

type contextKey string

const employeeContextKey contextKey = "auth_employee"

type AuthMiddleware struct {
	validator sessionValidator
}

func NewAuthMiddleware(validator sessionValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth accepts only session-purpose tokens whose subject still
// exists in the store. Reset tokens never pass here.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthorized(w, "missing or invalid authorization header")
			return
		}

		tokenString := strings.TrimSpace(header[7:])
		employee, err := m.validator.ValidateSession(r.Context(), tokenString)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), employeeContextKey, employee)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func EmployeeFromContext(ctx context.Context) (model.Employee, bool) {
	employee, ok := ctx.Value(employeeContextKey).(model.Employee)
	return employee, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    "UNAUTHORIZED",
			Message: message,
		},
	})
}
