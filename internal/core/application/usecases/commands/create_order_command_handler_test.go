package commands_test

import (
	"testing"
	"time"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/core/domain/model/user"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeAdmin(t *testing.T) *user.User {
	t.Helper()

	admin, err := user.NewUser(kernel.NewID(kernel.KindUser), "admin", "$2a$10$hash", user.RoleAdmin, nil)
	require.NoError(t, err)
	return admin
}

func makeBranchUser(t *testing.T, branchID kernel.ID) *user.User {
	t.Helper()

	branchUser, err := user.NewUser(kernel.NewID(kernel.KindUser), "gdansk", "$2a$10$hash", user.RoleUser, &branchID)
	require.NoError(t, err)
	return branchUser
}

func TestCreateOrderCommandHandler_Handle_AdminUsesRequestedBranch(t *testing.T) {
	ctx := t.Context()
	admin := makeAdmin(t)
	branchID := kernel.NewID(kernel.KindBranch)
	cmd := validCreateOrderCommand(t, admin.ID(), &branchID)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, admin.ID()).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Branch() != nil && o.Branch().IsEqual(branchID) && o.Status() == order.StatusPending
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PersistsRequestedInitialStatus(t *testing.T) {
	ctx := t.Context()
	admin := makeAdmin(t)
	branchID := kernel.NewID(kernel.KindBranch)

	distance := 120.0
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewID(kernel.KindOrder),
		admin.ID(),
		"Hurtownia Nowak",
		"Warszawa, Prosta 1",
		"Kraków, Długa 5",
		time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 16, 0, 0, 0, time.UTC),
		"Palety",
		1200,
		"Van",
		order.StatusInProgress,
		&distance,
		nil,
		nil,
		&branchID,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, admin.ID()).Return(admin, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.StatusInProgress
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BranchUserForcedToOwnBranch(t *testing.T) {
	ctx := t.Context()
	ownBranch := kernel.NewID(kernel.KindBranch)
	otherBranch := kernel.NewID(kernel.KindBranch)
	actor := makeBranchUser(t, ownBranch)
	cmd := validCreateOrderCommand(t, actor.ID(), &otherBranch)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actor.ID()).Return(actor, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Branch() != nil && o.Branch().IsEqual(ownBranch)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AdminWithoutBranch(t *testing.T) {
	ctx := t.Context()
	admin := makeAdmin(t)
	cmd := validCreateOrderCommand(t, admin.ID(), nil)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, admin.ID()).Return(admin, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ActorNotFound(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewID(kernel.KindUser)
	branchID := kernel.NewID(kernel.KindBranch)
	cmd := validCreateOrderCommand(t, actorID, &branchID)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actorID).
			Return(nil, errs.NewObjectNotFoundError("actorId", actorID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockCreateOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
