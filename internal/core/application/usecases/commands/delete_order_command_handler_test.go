package commands_test

import (
	"testing"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Unconfirmed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(kernel.NewID(kernel.KindOrder), false)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteOrderCommandHandler_Handle_Confirmed(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewID(kernel.KindOrder)
	cmd, err := commands.NewDeleteOrderCommand(orderID, true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, orderID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewID(kernel.KindOrder)
	cmd, err := commands.NewDeleteOrderCommand(orderID, true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, orderID).
			Return(errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
