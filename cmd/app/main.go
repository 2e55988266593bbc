package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"transport/cmd"
	transporthttp "transport/internal/adapters/in/http"
	"transport/internal/adapters/out/postgres/branchrepo"
	"transport/internal/adapters/out/postgres/driverrepo"
	"transport/internal/adapters/out/postgres/orderrepo"
	"transport/internal/adapters/out/postgres/userrepo"
	"transport/internal/adapters/out/postgres/vehiclerepo"
	"transport/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"log/slog"
)

func main() {
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrateDatabase(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOverdueOrdersQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		ReportServiceURL: goDotEnvVariable("REPORT_SERVICE_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func migrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&branchrepo.BranchDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := transporthttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateRegisterVehicleCommandHandler(),
		app.CreateRegisterDriverCommandHandler(),
		app.CreateCreateBranchCommandHandler(),
		app.CreateRegisterUserCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetDashboardQueryHandler(),
		app.CreateGetVehiclesQueryHandler(),
		app.CreateGetDriversQueryHandler(),
		app.CreateGetBranchesQueryHandler(),
		app.CreateGetUsersQueryHandler(),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateGenerateReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
