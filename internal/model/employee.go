package model

import "time"

// Employee is the authenticated identity of the system. The password hash
// is only ever written through the credential-reset or registration paths.
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	NationalID   string    `json:"national_id"`
	PasswordHash string    `json:"-"`
	BranchID     string    `json:"branch_id"`
	RoleID       string    `json:"role_id"`
	StatusID     string    `json:"status_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenClaims is the decoded content of a bearer token.
type TokenClaims struct {
	Subject   string
	Purpose   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type SessionToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
