package queries

import (
	"context"
	"time"

	"transport/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler computes dashboard metrics over the actor's
// visible orders. Recomputed from scratch on every call, so repeating the
// query without data changes returns identical numbers.
type GetDashboardQueryHandler struct {
	db      *gorm.DB
	scope   services.Scope
	metrics services.MetricsCalculator
	now     func() time.Time
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		db:      db,
		scope:   services.NewScope(),
		metrics: services.NewMetricsCalculator(services.NewTariff()),
		now:     time.Now,
	}
}

// Handle executes the dashboard query. "Today" and "this month" are resolved
// against the host's local calendar at call time.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	actor, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	orders, err := loadOrders(ctx, h.db)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	visible := h.scope.VisibleOrders(orders, actor, query.BranchFilter())
	computed := h.metrics.Compute(visible, h.now())

	return GetDashboardQueryResponse{
		ActiveCount:     computed.ActiveCount,
		TodayDeliveries: computed.TodayDeliveries,
		MonthlyRevenue:  computed.MonthlyRevenue.StringFixed(2),
	}, nil
}
