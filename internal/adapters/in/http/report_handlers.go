package http

import (
	"fmt"
	"net/http"
	"time"

	"transport/internal/core/application/reports"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// GenerateReport handles POST /api/v1/reports - renders a financial,
// efficiency or custom report for the acting user.
func (s *Server) GenerateReport(ctx echo.Context) error {
	actorID, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ReportRequest
	if err = ctx.Bind(&request); err != nil {
		return bindError(ctx)
	}

	kind, err := reportKindFromString(request.Type)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var query queries.GenerateReportQuery
	if kind == reports.KindCustom {
		var orderID kernel.ID
		orderID, err = kernel.IDFromStringOfKind(request.OrderID, kernel.KindOrder)
		if err != nil {
			return errorResponse(ctx, err)
		}
		query, err = queries.NewGenerateCustomReportQuery(
			actorID, orderID, request.Distance, request.Destination)
	} else {
		var dateFrom, dateTo *time.Time
		dateFrom, err = optionalDate("dateFrom", request.DateFrom)
		if err != nil {
			return errorResponse(ctx, err)
		}
		dateTo, err = optionalDate("dateTo", request.DateTo)
		if err != nil {
			return errorResponse(ctx, err)
		}
		query, err = queries.NewGenerateLocalReportQuery(
			actorID, kind, request.BranchID, dateFrom, dateTo)
	}
	if err != nil {
		return errorResponse(ctx, err)
	}

	rendered, err := s.generateReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReportResponse{Report: rendered.Report})
}

func reportKindFromString(name string) (reports.Kind, error) {
	switch name {
	case "financial":
		return reports.KindFinancial, nil
	case "efficiency":
		return reports.KindEfficiency, nil
	case "custom":
		return reports.KindCustom, nil
	default:
		return reports.KindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"type", fmt.Errorf("%q is not a known report type", name))
	}
}

// optionalDate parses a calendar date bound in the server's local zone,
// matching how delivery dates are bucketed.
func optionalDate(paramName, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return &parsed, nil
}
