package commands

import (
	"context"

	"autoshop/internal/core/domain/model/user"
)

// RegisterUserCommandHandler creates staff accounts. Email uniqueness is
// enforced by the database; a duplicate surfaces as errs.DuplicateValueError
// from the repository.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the account, hashing the password, and persists it.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	account, err := user.NewUser(
		cmd.UserID(), cmd.Username(), cmd.Email(), cmd.Password(), cmd.Role(),
	)
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

	if err = uow.UserRepository().Add(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
