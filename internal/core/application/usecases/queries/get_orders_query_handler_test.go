package queries_test

import (
	"context"
	"testing"
	"time"

	"transport/internal/adapters/out/postgres/branchrepo"
	"transport/internal/adapters/out/postgres/driverrepo"
	"transport/internal/adapters/out/postgres/orderrepo"
	"transport/internal/adapters/out/postgres/userrepo"
	"transport/internal/adapters/out/postgres/vehiclerepo"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/branch"
	"transport/internal/core/domain/model/driver"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/core/domain/model/user"
	"transport/internal/core/domain/model/vehicle"
	"transport/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a noop tracker for seeding through repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.ID, _ interface{}) {}

// GetOrdersQueryHandlerTestSuite verifies scoped order listing against a real
// PostgreSQL database.
type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler

	orderRepo  *orderrepo.GormOrderRepository
	userRepo   *userrepo.GormUserRepository
	branchRepo *branchrepo.GormBranchRepository

	warsaw kernel.ID
	krakow kernel.ID
	admin  kernel.ID
	clerk  kernel.ID
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&branchrepo.BranchDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.userRepo = userrepo.NewGormUserRepository(db, &mockAggregateTracker{})
	suite.branchRepo = branchrepo.NewGormBranchRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, users, branches, vehicles, drivers").Error
	suite.Require().NoError(err)

	suite.warsaw = suite.createBranch("Oddział Warszawa")
	suite.krakow = suite.createBranch("Oddział Kraków")
	suite.admin = suite.createUser("admin", user.RoleAdmin, nil)
	suite.clerk = suite.createUser("warszawa1", user.RoleUser, &suite.warsaw)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AdminSeesAllBranchesInInsertionOrder() {
	suite.createOrder("Pierwszy", &suite.warsaw, order.StatusPending, "Van", nil)
	suite.createOrder("Drugi", &suite.krakow, order.StatusPending, "Van", nil)
	suite.createOrder("Trzeci", &suite.warsaw, order.StatusCompleted, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.admin, "", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Pierwszy", result[0].ClientName)
	suite.Equal("Drugi", result[1].ClientName)
	suite.Equal("Trzeci", result[2].ClientName)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AdminBranchFilterNarrows() {
	suite.createOrder("Warszawski", &suite.warsaw, order.StatusPending, "Van", nil)
	suite.createOrder("Krakowski", &suite.krakow, order.StatusPending, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.admin, suite.krakow.String(), "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Krakowski", result[0].ClientName)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AdminAllSentinelSeesEverything() {
	suite.createOrder("Warszawski", &suite.warsaw, order.StatusPending, "Van", nil)
	suite.createOrder("Krakowski", &suite.krakow, order.StatusPending, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.admin, "all", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_BranchUserSeesOwnBranchOnly() {
	suite.createOrder("Warszawski", &suite.warsaw, order.StatusPending, "Van", nil)
	suite.createOrder("Krakowski", &suite.krakow, order.StatusPending, "Van", nil)
	suite.createOrder("Bezdomny", nil, order.StatusPending, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.clerk, "", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Warszawski", result[0].ClientName)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_BranchUserFilterOverrideIsIgnored() {
	suite.createOrder("Warszawski", &suite.warsaw, order.StatusPending, "Van", nil)
	suite.createOrder("Krakowski", &suite.krakow, order.StatusPending, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.clerk, suite.krakow.String(), "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Warszawski", result[0].ClientName)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilterNarrows() {
	suite.createOrder("Aktywny", &suite.warsaw, order.StatusPending, "Van", nil)
	suite.createOrder("Gotowy", &suite.warsaw, order.StatusCompleted, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.admin, "", "Completed")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Gotowy", result[0].ClientName)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ComputesRevenuePerTariff() {
	van := 100.0
	truck := 100.0
	suite.createOrder("Busem", &suite.warsaw, order.StatusPending, "Van", &van)
	suite.createOrder("Ciężarówką", &suite.warsaw, order.StatusPending, "Ciężarówka", &truck)
	suite.createOrder("Bez trasy", &suite.warsaw, order.StatusPending, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.admin, "", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("50.00", result[0].Revenue)
	suite.Equal("120.00", result[1].Revenue)
	suite.Equal("0.00", result[2].Revenue)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ResolvesAssignmentNames() {
	ctx := context.Background()

	testVehicle, err := vehicle.NewVehicle(
		kernel.NewID(kernel.KindVehicle), "WA12345", "Van", 1200)
	suite.Require().NoError(err)
	vehicleRepo := vehiclerepo.NewGormVehicleRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(vehicleRepo.Add(ctx, testVehicle))

	testDriver, err := driver.NewDriver(
		kernel.NewID(kernel.KindDriver), "Jan Kowalski", "+48 600 100 200")
	suite.Require().NoError(err)
	driverRepo := driverrepo.NewGormDriverRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(driverRepo.Add(ctx, testDriver))

	assigned := suite.createOrder("Obsadzony", &suite.warsaw, order.StatusPending, "Van", nil)
	vehicleID := testVehicle.ID()
	driverID := testDriver.ID()
	suite.Require().NoError(assigned.AssignVehicle(&vehicleID))
	suite.Require().NoError(assigned.AssignDriver(&driverID))
	suite.Require().NoError(suite.orderRepo.Update(ctx, assigned))

	suite.createOrder("Nieobsadzony", nil, order.StatusPending, "Van", nil)

	query, err := queries.NewGetOrdersQuery(suite.admin, "", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("WA12345", result[0].VehicleName)
	suite.Equal("Jan Kowalski", result[0].DriverName)
	suite.Equal("Oddział Warszawa", result[0].BranchName)

	suite.Equal(queries.UnassignedLabel, result[1].VehicleName)
	suite.Equal(queries.UnassignedLabel, result[1].DriverName)
	suite.Equal(queries.UnassignedLabel, result[1].BranchName)
	suite.Empty(result[1].VehicleID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_UnknownActor_ReturnsNotFound() {
	query, err := queries.NewGetOrdersQuery(kernel.NewID(kernel.KindUser), "", "")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrdersQueryHandlerTestSuite) createBranch(name string) kernel.ID {
	testBranch, err := branch.NewBranch(kernel.NewID(kernel.KindBranch), name, "ul. Testowa 1")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.branchRepo.Add(context.Background(), testBranch))
	return testBranch.ID()
}

func (suite *GetOrdersQueryHandlerTestSuite) createUser(
	username string, role user.Role, branchID *kernel.ID,
) kernel.ID {
	testUser, err := user.NewUser(
		kernel.NewID(kernel.KindUser),
		username,
		"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		role,
		branchID,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.userRepo.Add(context.Background(), testUser))
	return testUser.ID()
}

func (suite *GetOrdersQueryHandlerTestSuite) createOrder(
	clientName string,
	branchID *kernel.ID,
	status order.Status,
	vehicleType string,
	distanceKm *float64,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewID(kernel.KindOrder),
		clientName,
		"Warszawa, Prosta 51",
		"Poznań, Główna 3",
		time.Now(),
		time.Now().Add(24*time.Hour),
		"Paleta",
		500,
		vehicleType,
		status,
		nil,
		nil,
		branchID,
		distanceKm,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
