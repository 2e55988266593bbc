package queries_test

import (
	"testing"
	"time"

	"transport/internal/core/application/reports"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGenerateLocalReportQuery_Valid(t *testing.T) {
	actorID := kernel.NewID(kernel.KindUser)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local)

	query, err := queries.NewGenerateLocalReportQuery(
		actorID, reports.KindFinancial, "all", &from, &to)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.Equal(t, reports.KindFinancial, query.Kind())
	require.Equal(t, "all", query.BranchFilter())
	require.Equal(t, &from, query.DateFrom())
	require.Equal(t, &to, query.DateTo())
}

func TestNewGenerateLocalReportQuery_RejectsCustomKind(t *testing.T) {
	_, err := queries.NewGenerateLocalReportQuery(
		kernel.NewID(kernel.KindUser), reports.KindCustom, "", nil, nil)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGenerateCustomReportQuery_Valid(t *testing.T) {
	actorID := kernel.NewID(kernel.KindUser)
	orderID := kernel.NewID(kernel.KindOrder)

	query, err := queries.NewGenerateCustomReportQuery(actorID, orderID, "120.5", "Kraków")

	require.NoError(t, err)
	require.Equal(t, reports.KindCustom, query.Kind())
	require.True(t, query.OrderID().IsEqual(orderID))
	require.Equal(t, "120.5", query.RawDistance())
	require.Equal(t, "Kraków", query.Destination())
}

func TestNewGenerateCustomReportQuery_RejectsNonOrderIdentifier(t *testing.T) {
	_, err := queries.NewGenerateCustomReportQuery(
		kernel.NewID(kernel.KindUser), kernel.NewID(kernel.KindDriver), "10", "Kraków")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGenerateReportQuery_NotConstructed_FailsValidation(t *testing.T) {
	var query queries.GenerateReportQuery

	require.ErrorIs(t, query.Validate(), queries.ErrGenerateReportQueryIsNotConstructed)
}
