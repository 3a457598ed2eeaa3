package cmd

import (
	"time"

	httpin "petadoption/internal/adapters/in/http"
	"petadoption/internal/adapters/out/auth"
	"petadoption/internal/adapters/out/postgres"
	"petadoption/internal/adapters/out/postgres/userrepo"
	"petadoption/internal/core/application/usecases/commands"
	"petadoption/internal/core/application/usecases/queries"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     auth.BcryptPasswordHasher
	tokens     auth.JWTTokenService
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     auth.NewBcryptPasswordHasher(bcrypt.DefaultCost),
		tokens:     auth.NewJWTTokenService([]byte(config.JWTSecret), sessionTTL),
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateSeedAdminCommandHandler() commands.SeedAdminCommandHandler {
	return commands.NewSeedAdminCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateAddPetCommandHandler() commands.AddPetCommandHandler {
	return commands.NewAddPetCommandHandler(c.petUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReconcileAvailabilityCommandHandler() commands.ReconcileAvailabilityCommandHandler {
	return commands.NewReconcileAvailabilityCommandHandler(c.petUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailablePetsQueryHandler() queries.GetAvailablePetsQueryHandler {
	return queries.NewGetAvailablePetsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPetsQueryHandler() queries.GetAllPetsQueryHandler {
	return queries.NewGetAllPetsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPetImageQueryHandler() queries.GetPetImageQueryHandler {
	return queries.NewGetPetImageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserProfileQueryHandler() queries.GetUserProfileQueryHandler {
	return queries.NewGetUserProfileQueryHandler(c.gormDB)
}

// CreateAuthMiddleware builds the bearer-token middleware. The user lookup
// runs on the root connection outside any unit of work: authentication reads
// the current role on every request, so a revoked admin loses access as soon
// as the revocation commits.
func (c *CompositionRoot) CreateAuthMiddleware() httpin.AuthMiddleware {
	return httpin.NewAuthMiddleware(c.tokens, userrepo.NewGormUserRepository(c.gormDB))
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateLoginCommandHandler(),
		c.CreateAddPetCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetAvailablePetsQueryHandler(),
		c.CreateGetAllPetsQueryHandler(),
		c.CreateGetPetImageQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetUserProfileQueryHandler(),
	)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) petUoWFactory() commands.PetUoWFactory {
	return FuncPetUoWFactory(func() commands.PetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncPetUoWFactory func() commands.PetUoW

func (f FuncPetUoWFactory) Create() commands.PetUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
