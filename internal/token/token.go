package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rent-a-shelf/internal/model"
)

// Token purposes. A token issued for one purpose is never accepted where
// the other is expected.
const (
	PurposeSession = "session"
	PurposeReset   = "reset"
)

type claims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
}

// Service issues and validates signed bearer tokens for a single purpose.
// Validation is pure computation over the token string and the signing
// secret; the service holds no mutable state and is safe for concurrent use.
type Service struct {
	secret  []byte
	purpose string
	ttl     time.Duration
	now     func() time.Time
}

func NewService(secret string, purpose string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), purpose: purpose, ttl: ttl, now: time.Now}
}

func NewSessionService(secret string, ttl time.Duration) *Service {
	return NewService(secret, PurposeSession, ttl)
}

func NewResetService(secret string, ttl time.Duration) *Service {
	return NewService(secret, PurposeReset, ttl)
}

// TTL reports the validity window applied at issuance.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token asserting the subject until now+TTL.
func (s *Service) Issue(subject string) (string, error) {
	now := s.now().UTC()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Purpose: s.purpose,
	})

	return tok.SignedString(s.secret)
}

// Validate verifies signature, expiry, purpose and subject, returning the
// subject on success. It does not check that the subject still exists;
// that is the caller's responsibility.
func (s *Service) Validate(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenMalformed
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return "", model.ErrTokenMalformed
	}
	if c.Purpose != s.purpose {
		return "", model.ErrWrongPurpose
	}
	if c.Subject == "" {
		return "", model.ErrMissingSubject
	}

	return c.Subject, nil
}
