package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"parceltrack/cmd"
	_ "parceltrack/docs"
	adapterhttp "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres/deliveryrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Parcel Tracker API
// @version 1.5.0
// @description Order status tracker for parcel deliveries with SMS notifications and browser location sharing.
// @BasePath /
func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine in production where real env vars are set.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBMaxOpenConns: envIntOrDefault("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: envIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		TwilioSID:      os.Getenv("TWILIO_SID"),
		TwilioAuth:     os.Getenv("TWILIO_AUTH"),
		TwilioNumber:   os.Getenv("TWILIO_NUMBER"),
		ServerURL:      os.Getenv("SERVER_URL"),
	}

	if config.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, value, err)
	}
	return parsed
}

// mustOpenDatabase opens a pooled lib/pq connection, hands it to GORM and
// ensures the deliveries table exists.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	sqlDB, err := sql.Open("postgres", configs.DatabaseURL)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	sqlDB.SetMaxOpenConns(configs.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(configs.DBMaxIdleConns)

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&deliveryrepo.DeliveryDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := adapterhttp.NewEcho()
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
