package queries

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/application/reports"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrGenerateReportQueryIsNotConstructed = errors.New(
	"GenerateReportQuery must be created via a NewGenerate*ReportQuery constructor",
)

// GenerateReportQuery asks for one report rendering. Financial and efficiency
// reports run locally over the actor's visible orders; custom reports carry
// the per-order parameters for the external report service.
type GenerateReportQuery struct {
	actorID      kernel.ID
	kind         reports.Kind
	branchFilter string

	dateFrom *time.Time
	dateTo   *time.Time

	orderID     kernel.ID
	rawDistance string
	destination string

	guard guard.ConstructorGuard
}

// NewGenerateLocalReportQuery creates a financial or efficiency report query
// over the actor's visible orders. Either date bound may be nil; the delivery
// date filter only applies when both are present.
func NewGenerateLocalReportQuery(
	actorID kernel.ID,
	kind reports.Kind,
	branchFilter string,
	dateFrom *time.Time,
	dateTo *time.Time,
) (GenerateReportQuery, error) {
	if err := validateActorID(actorID); err != nil {
		return GenerateReportQuery{}, err
	}
	if kind != reports.KindFinancial && kind != reports.KindEfficiency {
		return GenerateReportQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"reportKind", errors.New("only financial and efficiency reports run locally"))
	}

	return GenerateReportQuery{
		actorID:      actorID,
		kind:         kind,
		branchFilter: branchFilter,
		dateFrom:     dateFrom,
		dateTo:       dateTo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NewGenerateCustomReportQuery creates a custom per-order report query.
// The distance stays raw here; the generator validates it before dispatch.
func NewGenerateCustomReportQuery(
	actorID kernel.ID,
	orderID kernel.ID,
	rawDistance string,
	destination string,
) (GenerateReportQuery, error) {
	if err := validateActorID(actorID); err != nil {
		return GenerateReportQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GenerateReportQuery{}, err
	}
	if orderID.Kind() != kernel.KindOrder {
		return GenerateReportQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("%s is not an order identifier", orderID))
	}

	return GenerateReportQuery{
		actorID:     actorID,
		kind:        reports.KindCustom,
		orderID:     orderID,
		rawDistance: rawDistance,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func validateActorID(actorID kernel.ID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if actorID.Kind() != kernel.KindUser {
		return errs.NewValueIsInvalidErrorWithCause(
			"actorId", fmt.Errorf("%s is not a user identifier", actorID))
	}
	return nil
}

// Validate ensures the query was created through a constructor.
func (q GenerateReportQuery) Validate() error {
	return q.guard.Validate(ErrGenerateReportQueryIsNotConstructed)
}

// ActorID returns the identifier of the user asking for the report.
func (q GenerateReportQuery) ActorID() kernel.ID { return q.actorID }

// Kind returns the requested report kind.
func (q GenerateReportQuery) Kind() reports.Kind { return q.kind }

// BranchFilter returns the requested branch narrowing, if any.
func (q GenerateReportQuery) BranchFilter() string { return q.branchFilter }

// DateFrom returns the lower delivery date bound, if set.
func (q GenerateReportQuery) DateFrom() *time.Time { return q.dateFrom }

// DateTo returns the upper delivery date bound, if set.
func (q GenerateReportQuery) DateTo() *time.Time { return q.dateTo }

// OrderID returns the order a custom report is about.
func (q GenerateReportQuery) OrderID() kernel.ID { return q.orderID }

// RawDistance returns the unparsed distance of a custom report request.
func (q GenerateReportQuery) RawDistance() string { return q.rawDistance }

// Destination returns the destination of a custom report request.
func (q GenerateReportQuery) Destination() string { return q.destination }

// GenerateReportQueryResponse carries the rendered report text.
type GenerateReportQueryResponse struct {
	Report string
}
