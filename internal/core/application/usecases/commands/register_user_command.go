package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a request to register a new user account.
// The plain credential only lives in the command; the handler hashes it
// before anything is persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates that the identifier is valid and username and password are not empty.
func NewRegisterUserCommand(userID kernel.UUID, username, password string) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setUsername(username),
		command.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the plain credential to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
