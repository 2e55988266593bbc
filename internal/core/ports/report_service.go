package ports

import (
	"context"

	"transport/internal/core/domain/model/kernel"
)

// ReportService is the outbound contract for the external per-order report
// microservice. Implementations translate transport failures and non-success
// responses into errs.ServiceFailedError with a human-readable message.
type ReportService interface {
	// GenerateOrderReport requests a report for one order over a given
	// distance and destination, returning the rendered report text.
	GenerateOrderReport(ctx context.Context, orderID kernel.ID, distanceKm float64, destination string) (string, error)
}
