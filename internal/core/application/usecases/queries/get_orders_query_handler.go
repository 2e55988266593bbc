package queries

import (
	"context"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler builds the scoped order list. Orders are rebuilt as
// domain aggregates so the scope and tariff services apply the same rules the
// write side enforces, then flattened into read models with resolved names.
type GetOrdersQueryHandler struct {
	db     *gorm.DB
	scope  services.Scope
	tariff services.Tariff
}

// NewGetOrdersQueryHandler creates a handler for scoped order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		db:     db,
		scope:  services.NewScope(),
		tariff: services.NewTariff(),
	}
}

// Handle executes the order list query.
// Loads the actor, scopes the full order collection to what the actor may
// see, applies the optional status filter and resolves assignment names.
// Insertion order is preserved end to end.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	orders, err := loadOrders(ctx, h.db)
	if err != nil {
		return nil, err
	}

	visible := h.scope.VisibleOrders(orders, actor, query.BranchFilter())
	if query.StatusFilter() != "" {
		visible = filterByStatus(visible, query.StatusFilter())
	}

	vehicleNames, err := nameIndex(ctx, h.db, `SELECT id, registration FROM vehicles`)
	if err != nil {
		return nil, err
	}
	driverNames, err := nameIndex(ctx, h.db, `SELECT id, full_name FROM drivers`)
	if err != nil {
		return nil, err
	}
	branchNames, err := nameIndex(ctx, h.db, `SELECT id, name FROM branches`)
	if err != nil {
		return nil, err
	}

	responses := make([]GetOrdersQueryResponse, 0, len(visible))
	for _, o := range visible {
		vehicleID, vehicleName := resolveReference(o.Vehicle(), vehicleNames)
		driverID, driverName := resolveReference(o.Driver(), driverNames)
		branchID, branchName := resolveReference(o.Branch(), branchNames)

		responses = append(responses, GetOrdersQueryResponse{
			ID:              o.ID().String(),
			ClientName:      o.ClientName(),
			PickupAddress:   o.PickupAddress(),
			DeliveryAddress: o.DeliveryAddress(),
			PickupAt:        o.PickupAt(),
			DeliveryAt:      o.DeliveryAt(),
			CargoType:       o.CargoType(),
			CargoWeight:     o.CargoWeight(),
			VehicleType:     o.VehicleType(),
			Status:          o.Status().String(),
			DistanceKm:      o.Distance(),
			VehicleID:       vehicleID,
			VehicleName:     vehicleName,
			DriverID:        driverID,
			DriverName:      driverName,
			BranchID:        branchID,
			BranchName:      branchName,
			Revenue:         h.tariff.Revenue(o).StringFixed(2),
		})
	}

	return responses, nil
}

func filterByStatus(orders []*order.Order, statusName string) []*order.Order {
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status().String() == statusName {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// resolveReference maps an optional reference to its identifier and display
// name. Dangling references keep their identifier but render the unassigned
// label, matching how missing assignments are shown.
func resolveReference(ref *kernel.ID, names map[string]string) (string, string) {
	if ref == nil {
		return "", UnassignedLabel
	}
	name, ok := names[ref.String()]
	if !ok {
		return ref.String(), UnassignedLabel
	}
	return ref.String(), name
}
