// Package user provides the User entity for the warehouse domain.
// A user owns products and orders; identity is immutable after registration.
package user

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents a registered tenant of the warehouse. Users own products
// and orders exclusively; ownership is checked on every access.
//
// The entity only carries the credential hash, never the plain credential.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string

	isConstructed bool
}

// NewUser creates a new User with validation.
//
// Parameters:
//   - id: Unique identifier for the user (must be valid UUID)
//   - username: Login name (must not be empty)
//   - passwordHash: Hash of the user's credential (must not be empty)
func NewUser(id kernel.UUID, username, passwordHash string) (*User, error) {
	user := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persisted state.
// Intended for use by repository implementations only.
func RestoreUser(id kernel.UUID, username, passwordHash string) (*User, error) {
	return NewUser(id, username, passwordHash)
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the user's login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the hash of the user's credential.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
