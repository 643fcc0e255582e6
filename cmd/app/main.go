package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autoshop/cmd"
	adapterhttp "autoshop/internal/adapters/in/http"
	"autoshop/internal/adapters/out/postgres/appointmentrepo"
	"autoshop/internal/adapters/out/postgres/customerrepo"
	"autoshop/internal/adapters/out/postgres/orderrepo"
	"autoshop/internal/adapters/out/postgres/userrepo"
	"autoshop/internal/adapters/out/postgres/vehiclerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		JWTTTL:     goDotEnvVariable("JWT_TTL_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustConnectDB opens the postgres connection and migrates the schema.
// TranslateError is required: the repositories detect unique-constraint
// violations through gorm.ErrDuplicatedKey.
func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&vehiclerepo.VehicleDTO{},
		&orderrepo.RepairOrderDTO{},
		&orderrepo.InspectionItemDTO{},
		&orderrepo.RepairItemDTO{},
		&orderrepo.RepairItemPartDTO{},
		&appointmentrepo.AppointmentDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = adapterhttp.NewRequestValidator()

	server := adapterhttp.NewServer(
		app.CreateCreateRepairOrderCommandHandler(),
		app.CreateUpdateInspectionCommandHandler(),
		app.CreateUpdateRepairItemsCommandHandler(),
		app.CreateUpdateRepairOrderStatusCommandHandler(),
		app.CreateCreateAppointmentCommandHandler(),
		app.CreateUpdateAppointmentStatusCommandHandler(),
		app.CreateRegisterUserCommandHandler(),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateCheckVehicleExistsQueryHandler(),
		app.CreateGetRepairOrdersQueryHandler(),
		app.CreateGetRepairOrderByIDQueryHandler(),
		app.CreateGetCustomersQueryHandler(),
		app.CreateGetVehiclesQueryHandler(),
		app.CreateGetAppointmentsQueryHandler(),
	)
	server.RegisterRoutes(e, adapterhttp.NewAuthMiddleware(app.TokenIssuer()))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			e.Logger.Info("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
