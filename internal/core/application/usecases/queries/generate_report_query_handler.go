package queries

import (
	"context"

	"transport/internal/core/application/reports"
	"transport/internal/core/domain/services"
	"transport/internal/core/ports"

	"gorm.io/gorm"
)

// GenerateReportQueryHandler renders reports through a fresh generator per
// request. Local kinds see only the orders the actor's scope allows; the
// custom kind goes straight to the external report service.
type GenerateReportQueryHandler struct {
	db            *gorm.DB
	scope         services.Scope
	reportService ports.ReportService
}

// NewGenerateReportQueryHandler creates a handler for report queries.
func NewGenerateReportQueryHandler(
	db *gorm.DB,
	reportService ports.ReportService,
) GenerateReportQueryHandler {
	return GenerateReportQueryHandler{
		db:            db,
		scope:         services.NewScope(),
		reportService: reportService,
	}
}

// Handle executes the report query.
func (h GenerateReportQueryHandler) Handle(
	ctx context.Context,
	query GenerateReportQuery,
) (GenerateReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GenerateReportQueryResponse{}, err
	}

	generator, err := reports.NewGenerator(h.reportService)
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}
	if err = generator.Select(query.Kind()); err != nil {
		return GenerateReportQueryResponse{}, err
	}

	if query.Kind() == reports.KindCustom {
		text, customErr := generator.ProduceCustom(
			ctx, query.OrderID(), query.RawDistance(), query.Destination())
		if customErr != nil {
			return GenerateReportQueryResponse{}, customErr
		}
		return GenerateReportQueryResponse{Report: text}, nil
	}

	actor, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}

	orders, err := loadOrders(ctx, h.db)
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}
	visible := h.scope.VisibleOrders(orders, actor, query.BranchFilter())

	var text string
	switch query.Kind() {
	case reports.KindFinancial:
		text, err = generator.ProduceFinancial(visible, query.DateFrom(), query.DateTo())
	case reports.KindEfficiency:
		text, err = generator.ProduceEfficiency(visible, query.DateFrom(), query.DateTo())
	}
	if err != nil {
		return GenerateReportQueryResponse{}, err
	}

	return GenerateReportQueryResponse{Report: text}, nil
}
