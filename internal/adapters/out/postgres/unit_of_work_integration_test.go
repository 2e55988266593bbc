package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "transport/internal/adapters/out/postgres"
	"transport/internal/adapters/out/postgres/branchrepo"
	"transport/internal/adapters/out/postgres/driverrepo"
	"transport/internal/adapters/out/postgres/orderrepo"
	"transport/internal/adapters/out/postgres/userrepo"
	"transport/internal/adapters/out/postgres/vehiclerepo"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/core/domain/model/user"
	"transport/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
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

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, vehicles, drivers, branches, users").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.VehicleRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.BranchRepository())
	suite.NotNil(uow1.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated Begin must be a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without Begin must fail")
	suite.Require().Error(uow.Rollback(ctx), "rollback without Begin must fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertOrderCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCrossRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()
	testUser := suite.createTestUser()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertOrderCount(1)

	var userCount int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&userCount).Error)
	suite.Equal(int64(1), userCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	distance := 80.0
	testOrder, err := order.NewOrder(
		kernel.NewID(kernel.KindOrder),
		"Firma Testowa",
		"Warszawa, Prosta 51",
		"Łódź, Piotrkowska 100",
		time.Now(),
		time.Now().Add(24*time.Hour),
		"Paleta",
		300,
		"Van",
		&distance,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestUser() *user.User {
	testUser, err := user.NewUser(
		kernel.NewID(kernel.KindUser),
		"dyspozytor",
		"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		user.RoleAdmin,
		nil,
	)
	suite.Require().NoError(err)
	return testUser
}

func (suite *UnitOfWorkIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
