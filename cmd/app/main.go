package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"orders/cmd"
	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultStaleOrderTTL = 24 * time.Hour

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustConnectDB(configs)
	migrateDb(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		getStaleOrderTTL(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:      os.Getenv("HTTP_PORT"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     os.Getenv("DB_SSLMODE"),
		StaleOrderTTL: os.Getenv("STALE_ORDER_TTL"),
	}
}

func getStaleOrderTTL(configs cmd.Config) time.Duration {
	if configs.StaleOrderTTL == "" {
		return defaultStaleOrderTTL
	}

	ttl, err := time.ParseDuration(configs.StaleOrderTTL)
	if err != nil || ttl <= 0 {
		log.Warnf("Invalid STALE_ORDER_TTL %q, using default %s", configs.StaleOrderTTL, defaultStaleOrderTTL)
		return defaultStaleOrderTTL
	}
	return ttl
}

// createDbIfNotExists connects to the maintenance database through lib/pq
// and creates the application database when it is missing, so a fresh
// environment boots without manual setup.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Error checking database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Error creating database %s: %v", configs.DBName, err)
		}
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDb(gormDB *gorm.DB) {
	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	openapiDoc, err := httpin.LoadOpenAPIDocument(context.Background())
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreatePayOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		openapiDoc,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	httpin.RegisterRoutes(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
