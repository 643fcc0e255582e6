package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"autoshop/internal/adapters/out/postgres"
	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/ports"
	"autoshop/internal/jobs"
	"autoshop/internal/pkg/token"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	issuer     *token.Issuer
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	issuer, err := token.NewIssuer(configs.JWTSecret, jwtTTL(configs.JWTTTL))
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		issuer:     issuer,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// jwtTTL parses the configured token lifetime in hours, zero meaning the
// issuer default.
func jwtTTL(raw string) time.Duration {
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return time.Duration(hours) * time.Hour
}

func (c *CompositionRoot) CreateCreateRepairOrderCommandHandler() commands.CreateRepairOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRepairOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInspectionCommandHandler() commands.UpdateInspectionCommandHandler {
	return commands.NewUpdateInspectionCommandHandler(c.repairOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRepairItemsCommandHandler() commands.UpdateRepairItemsCommandHandler {
	return commands.NewUpdateRepairItemsCommandHandler(c.repairOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRepairOrderStatusCommandHandler() commands.UpdateRepairOrderStatusCommandHandler {
	return commands.NewUpdateRepairOrderStatusCommandHandler(c.repairOrderUoWFactory())
}

func (c *CompositionRoot) CreateCreateAppointmentCommandHandler() commands.CreateAppointmentCommandHandler {
	return commands.NewCreateAppointmentCommandHandler(c.appointmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAppointmentStatusCommandHandler() commands.UpdateAppointmentStatusCommandHandler {
	return commands.NewUpdateAppointmentStatusCommandHandler(c.appointmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB, c.issuer)
}

func (c *CompositionRoot) CreateCheckVehicleExistsQueryHandler() queries.CheckVehicleExistsQueryHandler {
	return queries.NewCheckVehicleExistsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRepairOrdersQueryHandler() queries.GetRepairOrdersQueryHandler {
	return queries.NewGetRepairOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRepairOrderByIDQueryHandler() queries.GetRepairOrderByIDQueryHandler {
	return queries.NewGetRepairOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAppointmentsQueryHandler() queries.GetAppointmentsQueryHandler {
	return queries.NewGetAppointmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) TokenIssuer() *token.Issuer {
	return c.issuer
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// CreateJobManager wires the background jobs. The reminder job only reads,
// so it gets a repository outside any transaction.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.appointmentRepository(), c.logger)
}

func (c *CompositionRoot) appointmentRepository() ports.AppointmentRepository {
	return c.uowFactory.Create().AppointmentRepository()
}

func (c *CompositionRoot) repairOrderUoWFactory() commands.RepairOrderUoWFactory {
	return FuncRepairOrderUoWFactory(func() commands.RepairOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) appointmentUoWFactory() commands.AppointmentUoWFactory {
	return FuncAppointmentUoWFactory(func() commands.AppointmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncRepairOrderUoWFactory func() commands.RepairOrderUoW

func (f FuncRepairOrderUoWFactory) Create() commands.RepairOrderUoW {
	return f()
}

type FuncAppointmentUoWFactory func() commands.AppointmentUoW

func (f FuncAppointmentUoWFactory) Create() commands.AppointmentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
