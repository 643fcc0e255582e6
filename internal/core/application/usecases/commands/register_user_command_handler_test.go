package commands_test

import (
	"testing"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/user"
	"autoshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "liping", "liping@shop.example", "s3cret-pw", user.RoleStaff,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The account is persisted with a hash, never the raw password.
	added := userRepo.Calls[0].Arguments.Get(1).(*user.User)
	require.NotEqual(t, "s3cret-pw", added.PasswordHash())
	require.NoError(t, added.CheckPassword("s3cret-pw"))

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "liping", "liping@shop.example", "s3cret-pw", "",
	)
	require.NoError(t, err)

	duplicate := errs.NewDuplicateValueError("email", "liping@shop.example")

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var target *errs.DuplicateValueError
	require.ErrorAs(t, err, &target)
	uow.AssertExpectations(t)
}

func TestNewRegisterUserCommand_Validation(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "", "a@b.c", "pw-123", "")
	require.ErrorIs(t, err, commands.ErrUsernameIsRequired)

	_, err = commands.NewRegisterUserCommand(kernel.NewUUID(), "liping", "", "pw-123", "")
	require.ErrorIs(t, err, commands.ErrEmailIsRequired)

	_, err = commands.NewRegisterUserCommand(kernel.NewUUID(), "liping", "a@b.c", "", "")
	require.ErrorIs(t, err, commands.ErrPasswordIsRequired)

	_, err = commands.NewRegisterUserCommand(kernel.NewUUID(), "liping", "a@b.c", "pw-123", user.Role("owner"))
	require.Error(t, err)
}
