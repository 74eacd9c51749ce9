package main

import (
	"fmt"
	"log/slog"
	"os"

	"parcelnet/cmd"
	httpin "parcelnet/internal/adapters/in/http"
	"parcelnet/internal/adapters/out/postgres/officerepo"
	"parcelnet/internal/adapters/out/postgres/orderrepo"
	"parcelnet/internal/adapters/out/postgres/sellerrepo"
	"parcelnet/internal/adapters/out/postgres/shipperrepo"
	"parcelnet/internal/adapters/out/postgres/taskrepo"
	"parcelnet/internal/adapters/out/postgres/zonerepo"
	"parcelnet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreatePendingOrderSource(),
		app.CreateArrangePickupCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&officerepo.OfficeDTO{},
		&taskrepo.TaskDTO{},
		&zonerepo.ZoneDTO{},
		&shipperrepo.ShipperDTO{},
		&sellerrepo.SellerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateSubmitScanCommandHandler(),
		app.CreateSubmitShipperScanCommandHandler(),
		app.CreateArrangePickupCommandHandler(),
		app.CreateArrangeDeliveryCommandHandler(),
		app.CreateBulkCancelCommandHandler(),
		app.CreateMarkOrdersPrintedCommandHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.CreateGetOfficeOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
