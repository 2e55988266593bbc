package services

import (
	"github.com/shopspring/decimal"

	"transport/internal/core/domain/model/order"
)

// VehicleTypeVan is the one vehicle type tag with a reduced rate. Any other
// tag (canonically "Ciężarówka" or "Naczepa", but the set is open) prices at
// the default rate.
const VehicleTypeVan = "Van"

// Tariff is the single source of truth for the pricing rule: revenue is
// distance multiplied by a per-kilometer rate keyed by vehicle type. The
// dashboard, the order list and the report generator all price through the
// same instance, so the rule can never diverge between views.
//
// Amounts are decimal and unrounded; presentation code rounds to two places
// with StringFixed(2).
type Tariff struct {
	vanRatePerKm     decimal.Decimal
	defaultRatePerKm decimal.Decimal
}

// NewTariff creates the standard tariff: 0.5 per km for vans, 1.2 per km for
// everything else.
func NewTariff() Tariff {
	return Tariff{
		vanRatePerKm:     decimal.NewFromFloat(0.5),
		defaultRatePerKm: decimal.NewFromFloat(1.2),
	}
}

// Revenue prices a single order. Orders without a recorded distance yield
// zero revenue.
func (t Tariff) Revenue(o *order.Order) decimal.Decimal {
	if o.Distance() == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*o.Distance()).Mul(t.RatePerKm(o.VehicleType()))
}

// RatePerKm returns the per-kilometer rate for a vehicle type tag.
func (t Tariff) RatePerKm(vehicleType string) decimal.Decimal {
	if vehicleType == VehicleTypeVan {
		return t.vanRatePerKm
	}
	return t.defaultRatePerKm
}

// TotalRevenue sums the unrounded revenue over a set of orders.
func (t Tariff) TotalRevenue(orders []*order.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(t.Revenue(o))
	}
	return total
}
