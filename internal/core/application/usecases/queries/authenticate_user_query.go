package queries

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	ErrLoginEmailIsRequired    = errors.New("email is required")
	ErrLoginPasswordIsRequired = errors.New("password is required")
)

// AuthenticateUserQuery verifies login credentials and produces a signed
// access token. Modeled as a query because it writes nothing.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	if email == "" {
		return AuthenticateUserQuery{}, ErrLoginEmailIsRequired
	}
	if password == "" {
		return AuthenticateUserQuery{}, ErrLoginPasswordIsRequired
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the presented plain-text password.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse carries the signed token and the account it
// identifies.
type AuthenticateUserQueryResponse struct {
	Token     string
	ExpiresAt time.Time

	UserID   kernel.UUID
	Username string
	Role     string
}
