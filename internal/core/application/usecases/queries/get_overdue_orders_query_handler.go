package queries

import (
	"context"
	"time"

	"transport/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler finds active orders already past their planned
// delivery time.
type GetOverdueOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order
// queries.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db, now: time.Now}
}

// Handle executes the overdue order query. Completed orders are never
// overdue; active ones are once their delivery time lies in the past.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			delivery_address,
			delivery_at,
			status
		FROM orders
		WHERE status IN (?, ?)
		  AND delivery_at < ?
		ORDER BY seq
	`,
		order.StatusPending.String(),
		order.StatusInProgress.String(),
		h.now(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]GetOverdueOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOverdueOrdersQueryResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.ClientName,
			&resp.DeliveryAddress,
			&resp.DeliveryAt,
			&resp.Status,
		); err != nil {
			return nil, err
		}
		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
