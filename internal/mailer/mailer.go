// Package mailer carries password-reset tokens to the account owner over
// SMTP. The transport is opaque to the auth flow, which only sees the
// Sender interface.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Sender interface {
	SendResetToken(email string, token string) error
}

type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	linkBase string
}

func NewSMTPMailer(host string, port string, username string, password string, from string, linkBase string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		linkBase: strings.TrimRight(linkBase, "/"),
	}
}

// SendResetToken mails a plain-text reset link. The call blocks until the
// SMTP transaction completes; the caller decides what a failure means.
func (m *SMTPMailer) SendResetToken(email string, token string) error {
	msg := buildResetMessage(m.from, email, m.linkBase, token)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{email}, msg); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}

	return nil
}

func buildResetMessage(from string, to string, linkBase string, token string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Password Reset Request\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString("Click the link to reset your password: ")
	b.WriteString(linkBase + "/reset-password/" + token + "\r\n")
	b.WriteString("The link will expire in 15 minutes.\r\n")

	return []byte(b.String())
}
