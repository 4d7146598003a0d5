package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildResetMessage(t *testing.T) {
	t.Parallel()

	msg := string(buildResetMessage("noreply@example.com", "alice@example.com", "https://app.example.com", "tok123"))

	require.Contains(t, msg, "From: noreply@example.com\r\n")
	require.Contains(t, msg, "To: alice@example.com\r\n")
	require.Contains(t, msg, "Subject: Password Reset Request\r\n")
	require.Contains(t, msg, "https://app.example.com/reset-password/tok123")
}

func TestLinkBaseTrailingSlash(t *testing.T) {
	t.Parallel()

	m := NewSMTPMailer("smtp.example.com", "587", "user", "pass", "noreply@example.com", "https://app.example.com/")
	require.Equal(t, "https://app.example.com", m.linkBase)
}
