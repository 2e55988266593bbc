package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVehiclesQueryHandler lists the fleet straight from the vehicles table.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for fleet listing queries.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the fleet listing query in registration order.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) ([]GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			registration,
			vehicle_type,
			capacity_kg,
			status
		FROM vehicles
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]GetVehiclesQueryResponse, 0)
	for rows.Next() {
		var resp GetVehiclesQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Registration, &resp.VehicleType, &resp.CapacityKg, &resp.Status); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
