package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"twofold/internal/config"
	"twofold/internal/database"
	"twofold/internal/handlers"
	"twofold/internal/logger"
	"twofold/internal/models"
	"twofold/internal/server"
	"twofold/internal/session"
	"twofold/internal/validator"

	_ "twofold/internal/docs" // Import swagger docs
)

// @title           Twofold API
// @version         1.0
// @description     Twofold tracks a couple's shared investments and monthly savings goals.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	gate, err := session.NewGate(map[models.Role]string{
		models.RoleHusband: appConfig.HusbandPassword,
		models.RoleWife:    appConfig.WifePassword,
	}, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to build role gate: %w", err)
	}
	if len(gate.Enabled()) == 0 {
		log.Warn("No role passwords configured; nobody can log in")
	}

	// Initialize services
	svc := server.NewServices(dbManager.DB())
	users, err := svc.Users.EnsureUsers(context.Background(), map[models.Role]string{
		models.RoleHusband: appConfig.HusbandName,
		models.RoleWife:    appConfig.WifeName,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure users: %w", err)
	}
	for _, u := range users {
		log.Infow("participant ready", "role", u.Role, "name", u.Name)
	}

	validator.Register()
	router := server.NewRouter(gate, svc, server.Options{
		Auth: handlers.AuthSettings{
			Secret:       appConfig.JWTSecret,
			TTL:          appConfig.SessionTTL,
			CookieSecure: appConfig.CookieSecure,
		},
		CORSOrigin: appConfig.CORSOrigin,
		Swagger:    !appConfig.IsProduction(),
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Twofold backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
