package http

import (
	"net/http"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// GetVehicles handles GET /api/v1/vehicles - lists the fleet in
// registration order.
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.getVehiclesHandler.Handle(
		ctx.Request().Context(), queries.NewGetVehiclesQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = VehicleResponse{
			ID:           v.ID,
			Registration: v.Registration,
			VehicleType:  v.VehicleType,
			CapacityKg:   v.CapacityKg,
			Status:       v.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterVehicle handles POST /api/v1/vehicles - adds a vehicle to the
// fleet.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var request VehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	vehicleID := kernel.NewID(kernel.KindVehicle)
	cmd, err := commands.NewRegisterVehicleCommand(
		vehicleID,
		request.Registration,
		request.VehicleType,
		request.CapacityKg,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: vehicleID.String()})
}

// GetDrivers handles GET /api/v1/drivers - lists drivers in registration
// order.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getDriversHandler.Handle(
		ctx.Request().Context(), queries.NewGetDriversQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = DriverResponse{
			ID:          d.ID,
			FullName:    d.FullName,
			PhoneNumber: d.PhoneNumber,
			Status:      d.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriver handles POST /api/v1/drivers - adds a driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var request DriverRequest
	if err := ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	driverID := kernel.NewID(kernel.KindDriver)
	cmd, err := commands.NewRegisterDriverCommand(driverID, request.FullName, request.PhoneNumber)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// GetBranches handles GET /api/v1/branches - lists branches in creation
// order.
func (s *Server) GetBranches(ctx echo.Context) error {
	branches, err := s.getBranchesHandler.Handle(
		ctx.Request().Context(), queries.NewGetBranchesQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]BranchResponse, len(branches))
	for i, b := range branches {
		response[i] = BranchResponse{
			ID:      b.ID,
			Name:    b.Name,
			Address: b.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBranch handles POST /api/v1/branches - opens a new branch.
func (s *Server) CreateBranch(ctx echo.Context) error {
	var request BranchRequest
	if err := ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	branchID := kernel.NewID(kernel.KindBranch)
	cmd, err := commands.NewCreateBranchCommand(branchID, request.Name, request.Address)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createBranchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: branchID.String()})
}

// GetUsers handles GET /api/v1/users - lists principals without their
// credential hashes.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.getUsersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
			BranchID: u.BranchID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterUser handles POST /api/v1/users - registers a principal. The
// submitted password is hashed before it is stored.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request UserRequest
	if err := ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	role, err := user.RoleFromString(request.Role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	branchID, err := optionalReference(request.BranchID, kernel.KindBranch)
	if err != nil {
		return errorResponse(ctx, err)
	}

	userID := kernel.NewID(kernel.KindUser)
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		request.Username,
		request.Password,
		role,
		branchID,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}
