package queries_test

import (
	"context"
	"testing"
	"time"

	"petadoption/internal/adapters/out/postgres/userrepo"
	"petadoption/internal/core/application/usecases/queries"
	"petadoption/internal/core/domain/model/kernel"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUserProfileQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUserProfileQueryHandler
	userRepo  *userrepo.GormUserRepository
}

func (suite *GetUserProfileQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUserProfileQueryHandler(db)
	suite.userRepo = userrepo.NewGormUserRepository(db)
}

func (suite *GetUserProfileQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUserProfileQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetUserProfileQueryHandlerTestSuite) TestHandle_ReturnsProfile() {
	ctx := context.Background()

	account, err := user.NewUser(
		kernel.NewUUID(),
		"jane@example.com",
		"Jane",
		"$2a$10$hash",
		user.RoleUser,
		"Main St 1",
		"+1000000",
	)
	suite.Require().NoError(err)

	err = suite.userRepo.Add(ctx, account)
	suite.Require().NoError(err)

	query, err := queries.NewGetUserProfileQuery(account.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(account.ID().IsEqual(result.ID))
	suite.Equal("jane@example.com", result.Email)
	suite.Equal("Jane", result.Name)
	suite.Equal("user", result.Role)
	suite.Equal("Main St 1", result.Address)
	suite.Equal("+1000000", result.Phone)
}

func (suite *GetUserProfileQueryHandlerTestSuite) TestHandle_EmptyContactFields() {
	ctx := context.Background()

	account, err := user.NewUser(
		kernel.NewUUID(),
		"admin@example.com",
		"Admin",
		"$2a$10$hash",
		user.RoleAdmin,
		"",
		"",
	)
	suite.Require().NoError(err)

	err = suite.userRepo.Add(ctx, account)
	suite.Require().NoError(err)

	query, err := queries.NewGetUserProfileQuery(account.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("admin", result.Role)
	suite.Empty(result.Address)
	suite.Empty(result.Phone)
}

func (suite *GetUserProfileQueryHandlerTestSuite) TestHandle_UnknownUser_NotFound() {
	query, err := queries.NewGetUserProfileQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetUserProfileQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUserProfileQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetUserProfileQuery constructor")
}

func TestGetUserProfileQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUserProfileQueryHandlerTestSuite))
}
