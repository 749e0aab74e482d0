package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.App.LogLevel), cfg.App.Env)
	slog.SetDefault(log)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		applied, err := database.Migrate(context.Background(), db)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		slog.Info("Migrations applied", "versions", applied)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	reportSvc := reportService.NewReportService(reportRepo, cfg.Location())

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AuthRequired:   cfg.Auth.Required,
		Readiness:      db,
	}, JWTService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authService),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc),
		Report:   appHTTP.NewReportHandler(reportSvc),
	})

	if !cfg.Auth.Required {
		slog.Warn("AUTH_REQUIRED is false, data routes are public")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	slog.Info("Server exited gracefully")
	return nil
}
