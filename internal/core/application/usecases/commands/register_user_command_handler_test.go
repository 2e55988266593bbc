package commands_test

import (
	"errors"
	"testing"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_HashesPassword(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewID(kernel.KindBranch)
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewID(kernel.KindUser), "gdansk", "tajne123", user.RoleUser, &branchID)
	require.NoError(t, err)

	hasher := new(MockCredentialHasher)
	hasher.On("Hash", "tajne123").Return("$2a$10$storedhash", nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.CredentialHash() == "$2a$10$storedhash" && u.Username() == "gdansk"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	hasher.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_HasherError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewID(kernel.KindUser), "admin", "tajne123", user.RoleAdmin, nil)
	require.NoError(t, err)

	hasher := new(MockCredentialHasher)
	hasher.On("Hash", "tajne123").Return("", errors.New("hash error")).Once()

	factory := new(MockUserUoWFactory)

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestNewRegisterUserCommand_BranchUserRequiresValidBranchKind(t *testing.T) {
	orderID := kernel.NewID(kernel.KindOrder)

	_, err := commands.NewRegisterUserCommand(
		kernel.NewID(kernel.KindUser), "gdansk", "tajne123", user.RoleUser, &orderID)
	require.Error(t, err)
}
