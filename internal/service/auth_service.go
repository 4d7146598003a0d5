package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rent-a-shelf/internal/mailer"
	"rent-a-shelf/internal/model"
	"rent-a-shelf/internal/password"
	"rent-a-shelf/internal/token"
)

// CredentialStore is the slice of the employee repository the auth flow
// needs: point lookup by email and the single-row password update.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (model.Employee, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
}

// AuthService composes the hasher, the two token services, the credential
// store and the reset delivery channel into the login and password-reset
// flows. It holds no per-request state; everything a flow needs travels
// in the token itself.
type AuthService struct {
	store         CredentialStore
	sender        mailer.Sender
	sessionTokens *token.Service
	resetTokens   *token.Service
	storeTimeout  time.Duration
}

func NewAuthService(store CredentialStore, sender mailer.Sender, sessionTokens *token.Service, resetTokens *token.Service, storeTimeout time.Duration) *AuthService {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}

	return &AuthService{
		store:         store,
		sender:        sender,
		sessionTokens: sessionTokens,
		resetTokens:   resetTokens,
		storeTimeout:  storeTimeout,
	}
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password are deliberately indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email string, plaintext string) (model.SessionToken, error) {
	employee, err := s.findByEmail(ctx, email)
	if errors.Is(err, model.ErrEmployeeNotFound) {
		return model.SessionToken{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.SessionToken{}, err
	}

	if !password.Verify(plaintext, employee.PasswordHash) {
		return model.SessionToken{}, model.ErrInvalidCredentials
	}

	signed, err := s.sessionTokens.Issue(employee.Email)
	if err != nil {
		return model.SessionToken{}, fmt.Errorf("issue session token: %w", err)
	}

	return model.SessionToken{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.sessionTokens.TTL().Seconds()),
	}, nil
}

// RequestReset issues a reset token for the account and hands it to the
// delivery channel. The call is acknowledged only after delivery returns.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	employee, err := s.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	signed, err := s.resetTokens.Issue(employee.Email)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	if err := s.sender.SendResetToken(employee.Email, signed); err != nil {
		slog.Error("reset delivery failed", "error", err)
		return model.ErrDeliveryFailed
	}

	return nil
}

// CompleteReset validates the reset token and replaces the stored hash.
// Nothing is written when any check fails.
func (s *AuthService) CompleteReset(ctx context.Context, resetToken string, newPlaintext string, confirmPlaintext string) error {
	if newPlaintext != confirmPlaintext {
		return model.ErrPasswordMismatch
	}

	subject, err := s.resetTokens.Validate(resetToken)
	if err != nil {
		return err
	}

	employee, err := s.findByEmail(ctx, subject)
	if err != nil {
		return err
	}

	hash, err := password.Hash(newPlaintext)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if err := s.store.UpdatePasswordHash(storeCtx, employee.ID, hash); err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			return err
		}
		return storeFault(err)
	}

	return nil
}

// ValidateSession checks a session token and re-checks that its subject
// still exists, returning the employee.
func (s *AuthService) ValidateSession(ctx context.Context, sessionToken string) (model.Employee, error) {
	subject, err := s.sessionTokens.Validate(sessionToken)
	if err != nil {
		return model.Employee{}, err
	}

	return s.findByEmail(ctx, subject)
}

// findByEmail runs the store lookup under a bounded timeout and folds any
// fault other than a missing row into the store-unavailable error.
func (s *AuthService) findByEmail(ctx context.Context, email string) (model.Employee, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	employee, err := s.store.FindByEmail(storeCtx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			return model.Employee{}, err
		}
		return model.Employee{}, storeFault(err)
	}

	return employee, nil
}
