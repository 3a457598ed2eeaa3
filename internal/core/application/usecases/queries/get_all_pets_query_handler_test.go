package queries_test

import (
	"context"
	"testing"
	"time"

	"petadoption/internal/adapters/out/postgres/petrepo"
	"petadoption/internal/core/application/usecases/queries"
	"petadoption/internal/core/domain/model/user"
	"petadoption/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllPetsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllPetsQueryHandler
	petRepo   *petrepo.GormPetRepository
}

func (suite *GetAllPetsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&petrepo.PetDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllPetsQueryHandler(db)
	suite.petRepo = petrepo.NewGormPetRepository(db)
}

func (suite *GetAllPetsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllPetsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE pets CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllPetsQueryHandlerTestSuite) TestHandle_AdminSeesClaimedPets() {
	ctx := context.Background()

	availablePet, err := newPetNamed("Buddy")
	suite.Require().NoError(err)
	claimedPet, err := newPetNamed("Max")
	suite.Require().NoError(err)

	err = suite.petRepo.Add(ctx, availablePet)
	suite.Require().NoError(err)
	err = suite.petRepo.Add(ctx, claimedPet)
	suite.Require().NoError(err)

	err = suite.petRepo.Reserve(ctx, claimedPet.ID())
	suite.Require().NoError(err)

	query, err := queries.NewGetAllPetsQuery(user.RoleAdmin)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	availability := make(map[string]bool)
	for _, r := range result {
		availability[r.Name] = r.Available
	}
	suite.True(availability["Buddy"])
	suite.False(availability["Max"], "claimed pet should appear with available = false")
}

func (suite *GetAllPetsQueryHandlerTestSuite) TestHandle_NonAdmin_Forbidden() {
	query, err := queries.NewGetAllPetsQuery(user.RoleUser)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrAccessForbidden)
}

func (suite *GetAllPetsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllPetsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllPetsQuery constructor")
}

func TestGetAllPetsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllPetsQueryHandlerTestSuite))
}
