package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rent-a-shelf/internal/config"
	"rent-a-shelf/internal/handler"
	"rent-a-shelf/internal/middleware"
	"rent-a-shelf/internal/model"
	"rent-a-shelf/internal/password"
	"rent-a-shelf/internal/router"
	"rent-a-shelf/internal/service"
	"rent-a-shelf/internal/token"
)

type memoryStore struct {
	employees map[string]model.Employee
}

func (s *memoryStore) FindByEmail(_ context.Context, email string) (model.Employee, error) {
	for _, e := range s.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return model.Employee{}, model.ErrEmployeeNotFound
}

func (s *memoryStore) UpdatePasswordHash(_ context.Context, id string, passwordHash string) error {
	for key, e := range s.employees {
		if e.ID == id {
			e.PasswordHash = passwordHash
			s.employees[key] = e
			return nil
		}
	}
	return model.ErrEmployeeNotFound
}

type capturingSender struct {
	lastToken string
}

func (c *capturingSender) SendResetToken(_ string, tokenString string) error {
	c.lastToken = tokenString
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *capturingSender) {
	t.Helper()

	hash, err := password.Hash("pw1")
	require.NoError(t, err)

	store := &memoryStore{employees: map[string]model.Employee{
		"alice@example.com": {ID: "emp-1", Name: "Alice", Email: "alice@example.com", PasswordHash: hash},
	}}
	sender := &capturingSender{}

	sessionTokens := token.NewSessionService("test-secret", 30*time.Minute)
	resetTokens := token.NewResetService("test-secret", 15*time.Minute)
	authService := service.NewAuthService(store, sender, sessionTokens, resetTokens, 5*time.Second)

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	server := httptest.NewServer(router.New(cfg, middleware.NewAuthMiddleware(authService), router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Status:   handler.NewStatusHandler(nil),
		Branch:   handler.NewBranchHandler(nil),
		Employee: handler.NewEmployeeHandler(nil),
		Shelf:    handler.NewShelfHandler(nil),
		Client:   handler.NewClientHandler(nil),
		Payment:  handler.NewPaymentHandler(nil),
	}))
	t.Cleanup(server.Close)

	return server, sender
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/login", map[string]string{
			"email": "alice@example.com", "password": "pw1",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var parsed struct {
			Data model.SessionToken `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		require.NotEmpty(t, parsed.Data.AccessToken)
		require.Equal(t, "Bearer", parsed.Data.TokenType)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/login", map[string]string{
			"email": "alice@example.com", "password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email gets the same status", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/login", map[string]string{
			"email": "nobody@example.com", "password": "pw1",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestPasswordResetFlow(t *testing.T) {
	server, sender := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/auth/password-reset-request", map[string]string{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NotEmpty(t, sender.lastToken)

	t.Run("unknown email is 404", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/password-reset-request", map[string]string{
			"email": "nobody@example.com",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("mismatched confirmation is 400", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/password-reset", map[string]string{
			"token": sender.lastToken, "new_password": "pw2", "confirm_password": "pw3",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("reset token is not a session token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/auth/me", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+sender.lastToken)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid reset rotates the password", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/password-reset", map[string]string{
			"token": sender.lastToken, "new_password": "pw2", "confirm_password": "pw2",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		oldLogin := postJSON(t, server.URL+"/api/v1/auth/login", map[string]string{
			"email": "alice@example.com", "password": "pw1",
		})
		require.Equal(t, http.StatusUnauthorized, oldLogin.StatusCode)

		newLogin := postJSON(t, server.URL+"/api/v1/auth/login", map[string]string{
			"email": "alice@example.com", "password": "pw2",
		})
		require.Equal(t, http.StatusOK, newLogin.StatusCode)
	})

	t.Run("malformed reset token is 401", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/api/v1/auth/password-reset", map[string]string{
			"token": "not.a.jwt", "new_password": "pw2", "confirm_password": "pw2",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestProtectedEndpointsRequireSession(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/branches")
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	login := postJSON(t, server.URL+"/api/v1/auth/login", map[string]string{
		"email": "alice@example.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, login.StatusCode)

	var parsed struct {
		Data model.SessionToken `json:"data"`
	}
	require.NoError(t, json.NewDecoder(login.Body).Decode(&parsed))

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+parsed.Data.AccessToken)

	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = meResp.Body.Close() })
	require.Equal(t, http.StatusOK, meResp.StatusCode)
}
