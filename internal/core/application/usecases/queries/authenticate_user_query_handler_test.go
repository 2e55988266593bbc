package queries_test

import (
	"context"
	"testing"
	"time"

	"transport/internal/adapters/out/bcryptverify"
	"transport/internal/adapters/out/postgres/userrepo"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AuthenticateUserQueryHandlerTestSuite verifies credential checking against
// a real PostgreSQL database with real bcrypt hashes.
type AuthenticateUserQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.AuthenticateUserQueryHandler
	userRepo  *userrepo.GormUserRepository
	hasher    bcryptverify.Hasher

	branchID kernel.ID
	clerkID  kernel.ID
}

func (suite *AuthenticateUserQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))

	suite.handler = queries.NewAuthenticateUserQueryHandler(db, bcryptverify.NewVerifier())
	suite.userRepo = userrepo.NewGormUserRepository(db, &mockAggregateTracker{})
	suite.hasher = bcryptverify.NewHasher()
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuthenticateUserQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	hash, err := suite.hasher.Hash("tajne123")
	suite.Require().NoError(err)

	suite.branchID = kernel.NewID(kernel.KindBranch)
	branchID := suite.branchID
	clerk, err := user.NewUser(
		kernel.NewID(kernel.KindUser), "warszawa1", hash, user.RoleUser, &branchID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.userRepo.Add(context.Background(), clerk))
	suite.clerkID = clerk.ID()
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TestHandle_ValidCredentials_ReturnsIdentity() {
	query, err := queries.NewAuthenticateUserQuery("warszawa1", "tajne123")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(suite.clerkID.String(), result.UserID)
	suite.Equal("warszawa1", result.Username)
	suite.Equal("user", result.Role)
	suite.Equal(suite.branchID.String(), result.BranchID)
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TestHandle_WrongPassword_IsRejected() {
	query, err := queries.NewAuthenticateUserQuery("warszawa1", "tajne124")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrInvalidCredentials)
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TestHandle_UnknownUsername_IsRejectedTheSameWay() {
	query, err := queries.NewAuthenticateUserQuery("nieistnieje", "tajne123")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrInvalidCredentials)
}

func TestAuthenticateUserQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthenticateUserQueryHandlerTestSuite))
}
