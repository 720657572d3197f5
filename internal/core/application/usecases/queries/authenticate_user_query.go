package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	ErrAuthUsernameIsRequired = errors.New("username is required")
	ErrAuthPasswordIsRequired = errors.New("password is required")
)

// AuthenticateUserQuery verifies a username and password pair and, on
// success, yields a signed session token for subsequent requests.
//
// Lookup failures and hash mismatches produce the same error so a caller
// cannot probe which usernames exist.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a query to authenticate a user.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	if username == "" {
		return AuthenticateUserQuery{}, ErrAuthUsernameIsRequired
	}
	if password == "" {
		return AuthenticateUserQuery{}, ErrAuthPasswordIsRequired
	}

	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the login name to verify.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the plain credential to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse carries the authenticated user's identity and
// the signed session token.
type AuthenticateUserQueryResponse struct {
	UserID kernel.UUID
	Token  string
}
