package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"freight/cmd"
	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres/customerrepo"
	"freight/internal/adapters/out/postgres/itemrepo"
	"freight/internal/adapters/out/postgres/raterepo"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/jobs"
	"freight/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ensureRatesRow(app, logger)

	jobManager := startJobs(app, logger)
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&itemrepo.ItemDTO{},
		&itemrepo.PhotoDTO{},
		&customerrepo.CustomerDTO{},
		&raterepo.RatesDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// ensureRatesRow seeds the pricing settings row on first start so tagging
// works before an administrator has set real rates.
func ensureRatesRow(app cmd.CompositionRoot, logger *slog.Logger) {
	ctx := context.Background()
	store := app.RateStore()

	_, err := store.Get(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		log.Fatalf("Failed to read pricing rates: %v", err)
	}

	rates, err := pricing.NewRates(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(5),
		decimal.NewFromInt(15),
	)
	if err != nil {
		log.Fatalf("Failed to build default pricing rates: %v", err)
	}

	if err := store.Save(ctx, rates); err != nil {
		log.Fatalf("Failed to seed pricing rates: %v", err)
	}
	logger.InfoContext(ctx, "Seeded default pricing rates row")
}

func startJobs(app cmd.CompositionRoot, logger *slog.Logger) *jobs.JobManager {
	manager := jobs.NewJobManager(app.CreateRecomputeCostsCommandHandler(), logger)
	if err := manager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return manager
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateItemCommandHandler(),
		app.CreateTagItemCommandHandler(),
		app.CreateLoadItemsIntoContainerCommandHandler(),
		app.CreateUnloadItemFromContainerCommandHandler(),
		app.CreateMarkContainerArrivedCommandHandler(),
		app.CreateUpdateItemStatusCommandHandler(),
		app.CreateSetItemFlagCommandHandler(),
		app.CreateApplyBatchCommandHandler(),
		app.CreateDeleteItemCommandHandler(),
		app.CreateRecomputeCostsCommandHandler(),
		app.CreateGetItemsQueryHandler(),
		app.CreateGetContainersQueryHandler(),
		app.CreateGetAllCustomersQueryHandler(),
		app.RateStore(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
