package services

import (
	"time"

	"github.com/shopspring/decimal"

	"transport/internal/core/domain/model/order"
)

// DashboardMetrics is the read model shown on the dashboard. MonthlyRevenue
// is an unrounded decimal sum; round only when rendering.
type DashboardMetrics struct {
	ActiveCount     int
	TodayDeliveries int
	MonthlyRevenue  decimal.Decimal
}

// MetricsCalculator derives dashboard metrics from a scoped order set and a
// time reference. Results are recomputed on every call; nothing derived is
// ever persisted.
//
// Calendar comparisons use the local calendar of the timestamps involved,
// matching how dispatchers read "today" and "this month" off the wall clock.
type MetricsCalculator struct {
	tariff Tariff
}

// NewMetricsCalculator creates a calculator pricing through the given tariff.
func NewMetricsCalculator(tariff Tariff) MetricsCalculator {
	return MetricsCalculator{tariff: tariff}
}

// Compute aggregates the scoped orders as of the given time reference:
// active order count, deliveries due on the same calendar day, and summed
// revenue of deliveries in the same calendar month and year.
func (m MetricsCalculator) Compute(orders []*order.Order, asOf time.Time) DashboardMetrics {
	metrics := DashboardMetrics{MonthlyRevenue: decimal.Zero}

	asOfYear, asOfMonth, asOfDay := asOf.Date()
	for _, o := range orders {
		if o.Status().IsActive() {
			metrics.ActiveCount++
		}

		year, month, day := o.DeliveryAt().Date()
		if year == asOfYear && month == asOfMonth && day == asOfDay {
			metrics.TodayDeliveries++
		}
		if year == asOfYear && month == asOfMonth {
			metrics.MonthlyRevenue = metrics.MonthlyRevenue.Add(m.tariff.Revenue(o))
		}
	}

	return metrics
}
