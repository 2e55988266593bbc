package http

import (
	"net/http"

	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - lists the orders visible to the
// acting user. Supports optional ?branchId= and ?status= narrowing.
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(
		actorID,
		ctx.QueryParam("branchId"),
		ctx.QueryParam("status"),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:              o.ID,
			ClientName:      o.ClientName,
			PickupAddress:   o.PickupAddress,
			DeliveryAddress: o.DeliveryAddress,
			PickupAt:        o.PickupAt,
			DeliveryAt:      o.DeliveryAt,
			CargoType:       o.CargoType,
			CargoWeight:     o.CargoWeight,
			VehicleType:     o.VehicleType,
			Status:          o.Status,
			DistanceKm:      o.DistanceKm,
			VehicleID:       o.VehicleID,
			VehicleName:     o.VehicleName,
			DriverID:        o.DriverID,
			DriverName:      o.DriverName,
			BranchID:        o.BranchID,
			BranchName:      o.BranchName,
			Revenue:         o.Revenue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order on behalf
// of the acting user. Branch users always create into their own branch; an
// omitted status means Pending.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	status := order.StatusPending
	if request.Status != "" {
		if status, err = order.StatusFromString(request.Status); err != nil {
			return errorResponse(ctx, err)
		}
	}

	vehicleID, err := optionalReference(request.VehicleID, kernel.KindVehicle)
	if err != nil {
		return errorResponse(ctx, err)
	}
	driverID, err := optionalReference(request.DriverID, kernel.KindDriver)
	if err != nil {
		return errorResponse(ctx, err)
	}
	branchID, err := optionalReference(request.BranchID, kernel.KindBranch)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewID(kernel.KindOrder)
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actorID,
		request.ClientName,
		request.PickupAddress,
		request.DeliveryAddress,
		request.PickupAt,
		request.DeliveryAt,
		request.CargoType,
		request.CargoWeight,
		request.VehicleType,
		status,
		request.DistanceKm,
		vehicleID,
		driverID,
		branchID,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:orderId - replaces every field of
// the order with the submitted values, branch included.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.IDFromStringOfKind(ctx.Param("orderId"), kernel.KindOrder)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicleID, err := optionalReference(request.VehicleID, kernel.KindVehicle)
	if err != nil {
		return errorResponse(ctx, err)
	}
	driverID, err := optionalReference(request.DriverID, kernel.KindDriver)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if request.BranchID == nil || *request.BranchID == "" {
		return errorResponse(ctx, errs.NewValueIsRequiredError("branchId"))
	}
	branchID, err := kernel.IDFromStringOfKind(*request.BranchID, kernel.KindBranch)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		request.ClientName,
		request.PickupAddress,
		request.DeliveryAddress,
		request.PickupAt,
		request.DeliveryAt,
		request.CargoType,
		request.CargoWeight,
		request.VehicleType,
		status,
		request.DistanceKm,
		vehicleID,
		driverID,
		branchID,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes the order
// when ?confirmed=true is set; an unconfirmed request changes nothing.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.IDFromStringOfKind(ctx.Param("orderId"), kernel.KindOrder)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, ctx.QueryParam("confirmed") == "true")
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/dashboard - computes the metrics for the
// actor's scope, optionally narrowed with ?branchId=.
func (s *Server) GetDashboard(ctx echo.Context) error {
	actorID, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDashboardQuery(actorID, ctx.QueryParam("branchId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	metrics, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		ActiveCount:     metrics.ActiveCount,
		TodayDeliveries: metrics.TodayDeliveries,
		MonthlyRevenue:  metrics.MonthlyRevenue,
	})
}

// optionalReference parses an optional identifier reference. Absent or empty
// submissions mean "unassigned".
func optionalReference(raw *string, kind kernel.Kind) (*kernel.ID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.IDFromStringOfKind(*raw, kind)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
