package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rent-a-shelf/internal/model"
)

func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	svc := NewSessionService("test-secret", 30*time.Minute)

	signed, err := svc.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := svc.Validate(signed)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", subject)
}

func TestValidateExpired(t *testing.T) {
	t.Parallel()

	svc := NewSessionService("test-secret", -1*time.Second)

	signed, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestValidateExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	svc := NewSessionService("test-secret", 30*time.Minute)
	svc.now = func() time.Time { return issuedAt }

	signed, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	t.Run("still valid just inside the window", func(t *testing.T) {
		svc.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }

		subject, err := svc.Validate(signed)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", subject)
	})

	t.Run("expired just past the window", func(t *testing.T) {
		svc.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }

		_, err := svc.Validate(signed)
		require.ErrorIs(t, err, model.ErrTokenExpired)
	})
}

func TestValidateWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewSessionService("right-secret", time.Hour)
	verifier := NewSessionService("wrong-secret", time.Hour)

	signed, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(signed)
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}

func TestValidateMalformed(t *testing.T) {
	t.Parallel()

	svc := NewSessionService("test-secret", time.Hour)

	for _, tokenString := range []string{"", "not.a.jwt", "garbage"} {
		_, err := svc.Validate(tokenString)
		require.ErrorIs(t, err, model.ErrTokenMalformed)
	}
}

func TestValidateMissingSubject(t *testing.T) {
	t.Parallel()

	svc := NewSessionService("test-secret", time.Hour)

	signed, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	require.ErrorIs(t, err, model.ErrMissingSubject)
}

func TestPurposeSeparation(t *testing.T) {
	t.Parallel()

	sessions := NewSessionService("test-secret", 30*time.Minute)
	resets := NewResetService("test-secret", 15*time.Minute)

	t.Run("reset token rejected as session token", func(t *testing.T) {
		signed, err := resets.Issue("alice@example.com")
		require.NoError(t, err)

		_, err = sessions.Validate(signed)
		require.ErrorIs(t, err, model.ErrWrongPurpose)
	})

	t.Run("session token rejected as reset token", func(t *testing.T) {
		signed, err := sessions.Issue("alice@example.com")
		require.NoError(t, err)

		_, err = resets.Validate(signed)
		require.ErrorIs(t, err, model.ErrWrongPurpose)
	})

	t.Run("each purpose validates its own tokens", func(t *testing.T) {
		signed, err := resets.Issue("alice@example.com")
		require.NoError(t, err)

		subject, err := resets.Validate(signed)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", subject)
	})
}

func TestTTL(t *testing.T) {
	t.Parallel()

	require.Equal(t, 30*time.Minute, NewSessionService("s", 30*time.Minute).TTL())
	require.Equal(t, 15*time.Minute, NewResetService("s", 15*time.Minute).TTL())
}
