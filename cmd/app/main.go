package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"petadoption/cmd"
	"petadoption/internal/adapters/out/postgres/orderrepo"
	"petadoption/internal/adapters/out/postgres/petrepo"
	"petadoption/internal/adapters/out/postgres/userrepo"
	"petadoption/internal/core/application/usecases/commands"
	"petadoption/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		// Required so the user repository can detect duplicate emails
		// through gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&userrepo.UserDTO{}, &petrepo.PetDTO{}, &orderrepo.OrderDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	seedAdmin(&app, configs, logger)

	jobManager := jobs.NewJobManager(app.CreateReconcileAvailabilityCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		DBHost:        envOrDefault("DB_HOST", "localhost"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminEmail:    envOrDefault("ADMIN_EMAIL", "admin@petadoption.com"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "admin123"),
	}

	if config.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// seedAdmin ensures the administrator account exists before the server
// starts taking requests. Reruns and concurrent instances are safe: the
// handler treats an already seeded admin as success.
func seedAdmin(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	seedCmd, err := commands.NewSeedAdminCommand(configs.AdminEmail, configs.AdminPassword, "Administrator")
	if err != nil {
		log.Fatalf("Error building admin seed: %v", err)
	}

	handler := app.CreateSeedAdminCommandHandler()
	if err = handler.Handle(context.Background(), seedCmd); err != nil {
		log.Fatalf("Error seeding admin account: %v", err)
	}

	logger.Info("Admin account ready", "email", configs.AdminEmail)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateServer()
	server.RegisterRoutes(e, app.CreateAuthMiddleware())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
