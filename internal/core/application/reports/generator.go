// Package reports builds the financial and efficiency summaries locally and
// delegates custom per-order reports to the external report service. The
// generator is a small state machine: a report kind is selected, a report is
// produced, and selecting again clears whatever was rendered before.
package reports

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/core/domain/services"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// Kind selects which report path is used.
type Kind int

const (
	KindUnknown Kind = iota
	KindFinancial
	KindEfficiency
	KindCustom
)

// Validate checks the kind names a known report path.
func (k Kind) Validate() error {
	switch k {
	case KindFinancial, KindEfficiency, KindCustom:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"reportKind", fmt.Errorf("%d is not a known report kind", int(k)))
	}
}

// State is the generator's position in the selection/production cycle.
type State int

const (
	StateIdle State = iota
	StateFinancialSelected
	StateEfficiencySelected
	StateCustomSelected
	StateProduced
)

// Generator renders report text. Not safe for concurrent use; each session
// works with its own generator.
type Generator struct {
	tariff        services.Tariff
	reportService ports.ReportService

	kind     Kind
	produced bool
	content  string
}

// NewGenerator creates a report generator delegating custom reports to the
// given service.
func NewGenerator(reportService ports.ReportService) (*Generator, error) {
	if reportService == nil {
		return nil, errs.NewValueIsRequiredError("reportService")
	}
	return &Generator{
		tariff:        services.NewTariff(),
		reportService: reportService,
	}, nil
}

// State reports the current position in the selection/production cycle.
func (g *Generator) State() State {
	if g.produced {
		return StateProduced
	}
	switch g.kind {
	case KindFinancial:
		return StateFinancialSelected
	case KindEfficiency:
		return StateEfficiencySelected
	case KindCustom:
		return StateCustomSelected
	default:
		return StateIdle
	}
}

// Content returns the last rendered report text, empty until a report has
// been produced or after a failed custom dispatch.
func (g *Generator) Content() string {
	return g.content
}

// Select picks the report kind and clears any previously rendered text.
func (g *Generator) Select(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	g.kind = kind
	g.produced = false
	g.content = ""
	return nil
}

// ProduceFinancial renders the financial summary over the given scoped
// orders, filtered inclusively by delivery date when both bounds are set.
func (g *Generator) ProduceFinancial(orders []*order.Order, dateFrom, dateTo *time.Time) (string, error) {
	if g.kind != KindFinancial {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"reportKind", errors.New("financial report is not selected"))
	}

	filtered := filterByDeliveryDate(orders, dateFrom, dateTo)
	total := g.tariff.TotalRevenue(filtered)

	g.content = fmt.Sprintf(
		"Raport finansowy (%s - %s):\n"+
			"Liczba zleceń: %d\n"+
			"Całkowity przychód: %s zł (0.5 zł/km dla busa, 1.2 zł/km dla ciężarówki)",
		formatBound(dateFrom, "od zawsze"),
		formatBound(dateTo, "do teraz"),
		len(filtered),
		total.StringFixed(2),
	)
	g.produced = true
	return g.content, nil
}

// ProduceEfficiency renders the completion-rate summary over the given
// scoped orders. An empty filtered set reports 0%, never a division error.
func (g *Generator) ProduceEfficiency(orders []*order.Order, dateFrom, dateTo *time.Time) (string, error) {
	if g.kind != KindEfficiency {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"reportKind", errors.New("efficiency report is not selected"))
	}

	filtered := filterByDeliveryDate(orders, dateFrom, dateTo)

	completed := 0
	for _, o := range filtered {
		if o.Status() == order.StatusCompleted {
			completed++
		}
	}

	efficiency := 0.0
	if len(filtered) > 0 {
		efficiency = float64(completed) / float64(len(filtered)) * 100
	}

	g.content = fmt.Sprintf(
		"Raport efektywności (%s - %s):\n"+
			"Liczba zleceń: %d\n"+
			"Zakończonych: %d\n"+
			"Efektywność: %.2f%%",
		formatBound(dateFrom, "od zawsze"),
		formatBound(dateTo, "do teraz"),
		len(filtered),
		completed,
		efficiency,
	)
	g.produced = true
	return g.content, nil
}

// ProduceCustom validates the raw distance locally, then delegates to the
// external report service and renders its text verbatim. Any failure clears
// the rendered content so a stale report is never shown next to an error.
func (g *Generator) ProduceCustom(
	ctx context.Context,
	orderID kernel.ID,
	rawDistance string,
	destination string,
) (string, error) {
	if g.kind != KindCustom {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"reportKind", errors.New("custom report is not selected"))
	}

	g.content = ""
	g.produced = false

	if err := orderID.Validate(); err != nil {
		return "", err
	}
	if destination == "" {
		return "", errs.NewValueIsRequiredError("destination")
	}

	distanceKm, err := strconv.ParseFloat(rawDistance, 64)
	if err != nil || distanceKm < 0 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"distance", errors.New("odległość musi być liczbą dodatnią"))
	}

	text, err := g.reportService.GenerateOrderReport(ctx, orderID, distanceKm, destination)
	if err != nil {
		return "", err
	}

	g.content = text
	g.produced = true
	return text, nil
}

// filterByDeliveryDate keeps orders delivered within [from, to] by local
// calendar date. The filter only applies when both bounds are present.
func filterByDeliveryDate(orders []*order.Order, from, to *time.Time) []*order.Order {
	if from == nil || to == nil {
		return orders
	}

	fromDate := dateOnly(*from)
	toDate := dateOnly(*to)

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		delivered := dateOnly(o.DeliveryAt())
		if !delivered.Before(fromDate) && !delivered.After(toDate) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func formatBound(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format("2006-01-02")
}
