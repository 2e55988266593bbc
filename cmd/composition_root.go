package cmd

import (
	"transport/internal/adapters/out/bcryptverify"
	"transport/internal/adapters/out/postgres"
	"transport/internal/adapters/out/reportclient"
	"transport/internal/core/application/usecases/commands"
	"transport/internal/core/application/usecases/queries"
	"transport/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the application layer. Every handler
// the HTTP server and the jobs need is created here.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	reportService ports.ReportService
	hasher        ports.CredentialHasher
	verifier      ports.CredentialVerifier
}

// NewCompositionRoot assembles the adapters from the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	reportService, err := reportclient.New(config.ReportServiceURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		reportService: reportService,
		hasher:        bcryptverify.NewHasher(),
		verifier:      bcryptverify.NewVerifier(),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBranchCommandHandler() commands.CreateBranchCommandHandler {
	var f commands.BranchUoWFactory = FuncBranchUoWFactory(func() commands.BranchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBranchCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchesQueryHandler() queries.GetBranchesQueryHandler {
	return queries.NewGetBranchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB, c.verifier)
}

func (c *CompositionRoot) CreateGenerateReportQueryHandler() queries.GenerateReportQueryHandler {
	return queries.NewGenerateReportQueryHandler(c.gormDB, c.reportService)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
