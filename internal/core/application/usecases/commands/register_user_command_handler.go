package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/user"
	"warehouse/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler handles user registration.
// The credential is hashed with bcrypt before persistence; the plain value is
// never stored. Usernames are unique across the system.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration operations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user registration command.
// Fails with ValueIsInvalidError if the username is already taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByUsername(ctx, cmd.Username()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("username",
			errors.New("already taken"))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newUser, err := user.NewUser(cmd.UserID(), cmd.Username(), string(passwordHash))
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
