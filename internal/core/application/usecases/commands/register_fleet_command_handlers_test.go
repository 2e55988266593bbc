package commands_test

import (
	"testing"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterVehicleCommand(
		kernel.NewID(kernel.KindVehicle), "WX 12345", "Van", 1500)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(v *vehicle.Vehicle) bool {
			return v.Status() == vehicle.StatusAvailable
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewRegisterVehicleCommand_ZeroCapacity(t *testing.T) {
	_, err := commands.NewRegisterVehicleCommand(
		kernel.NewID(kernel.KindVehicle), "WX 12345", "Van", 0)
	require.Error(t, err)
}

func TestRegisterDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterDriverCommand(
		kernel.NewID(kernel.KindDriver), "Jan Kowalski", "+48 600 100 200")
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(d *driver.Driver) bool {
			return d.Status() == driver.StatusAvailable
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBranchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBranchCommand(
		kernel.NewID(kernel.KindBranch), "Oddział Gdańsk", "Gdańsk, Portowa 3")
	require.NoError(t, err)

	repo := new(MockBranchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BranchRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*branch.Branch")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBranchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBranchCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
