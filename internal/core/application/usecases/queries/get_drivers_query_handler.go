package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriversQueryHandler lists drivers straight from the drivers table.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver listing queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the driver listing query in registration order.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			phone_number,
			status
		FROM drivers
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetDriversQueryResponse, 0)
	for rows.Next() {
		var resp GetDriversQueryResponse
		if err = rows.Scan(&resp.ID, &resp.FullName, &resp.PhoneNumber, &resp.Status); err != nil {
			return nil, err
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
