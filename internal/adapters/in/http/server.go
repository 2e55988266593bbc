// Package http is the inbound HTTP adapter. It binds JSON requests into
// commands and queries, hands them to the application layer and translates
// the error taxonomy into status codes. The acting user is always taken from
// the X-User-Id header, never from ambient state.
package http

import (
	"errors"
	"net/http"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader names the request header carrying the acting user's identifier.
const ActorHeader = "X-User-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	registerVehicleHandler commands.RegisterVehicleCommandHandler
	registerDriverHandler  commands.RegisterDriverCommandHandler
	createBranchHandler    commands.CreateBranchCommandHandler
	registerUserHandler    commands.RegisterUserCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getDashboardHandler     queries.GetDashboardQueryHandler
	getVehiclesHandler      queries.GetVehiclesQueryHandler
	getDriversHandler       queries.GetDriversQueryHandler
	getBranchesHandler      queries.GetBranchesQueryHandler
	getUsersHandler         queries.GetUsersQueryHandler
	authenticateUserHandler queries.AuthenticateUserQueryHandler
	generateReportHandler   queries.GenerateReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	registerVehicleHandler commands.RegisterVehicleCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	createBranchHandler commands.CreateBranchCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
	getVehiclesHandler queries.GetVehiclesQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
	getBranchesHandler queries.GetBranchesQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	generateReportHandler queries.GenerateReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		deleteOrderHandler:      deleteOrderHandler,
		registerVehicleHandler:  registerVehicleHandler,
		registerDriverHandler:   registerDriverHandler,
		createBranchHandler:     createBranchHandler,
		registerUserHandler:     registerUserHandler,
		getOrdersHandler:        getOrdersHandler,
		getDashboardHandler:     getDashboardHandler,
		getVehiclesHandler:      getVehiclesHandler,
		getDriversHandler:       getDriversHandler,
		getBranchesHandler:      getBranchesHandler,
		getUsersHandler:         getUsersHandler,
		authenticateUserHandler: authenticateUserHandler,
		generateReportHandler:   generateReportHandler,
	}
}

// RegisterRoutes attaches every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/login", s.Login)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	api.GET("/dashboard", s.GetDashboard)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.RegisterVehicle)
	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers", s.RegisterDriver)
	api.GET("/branches", s.GetBranches)
	api.POST("/branches", s.CreateBranch)
	api.GET("/users", s.GetUsers)
	api.POST("/users", s.RegisterUser)

	api.POST("/reports", s.GenerateReport)
}

// Login handles POST /api/v1/auth/login - verifies credentials.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	query, err := queries.NewAuthenticateUserQuery(request.Username, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	authenticated, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		UserID:   authenticated.UserID,
		Username: authenticated.Username,
		Role:     authenticated.Role,
		BranchID: authenticated.BranchID,
	})
}

// actorFromRequest reads the acting user's identifier from the request
// header. Every scoped endpoint requires it.
func actorFromRequest(ctx echo.Context) (kernel.ID, error) {
	raw := ctx.Request().Header.Get(ActorHeader)
	if raw == "" {
		return kernel.ID{}, errs.NewValueIsRequiredError(ActorHeader)
	}
	return kernel.IDFromStringOfKind(raw, kernel.KindUser)
}

func bindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}

// errorResponse maps application errors onto HTTP status codes: validation
// failures become 400, unknown objects 404, rejected credentials 401 and
// report service failures 502.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrServiceFailed):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
