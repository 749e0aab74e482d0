package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/config"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/logger"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/attendance-dashboard-go/internal/service/auth"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "admin",
		Short:        "Attendance dashboard administration",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newCreateUserCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := database.Migrate(cmd.Context(), db)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
				return nil
			}
			for _, version := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Applied", version)
			}
			return nil
		},
	}
}

func newCreateUserCmd() *cobra.Command {
	var req auth.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a dashboard login",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := connect()
			if err != nil {
				return err
			}
			defer db.Close()

			authService := serviceAuth.NewAuthService(
				postgresql.NewUserRepository(db),
				jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration),
			)
			created, err := authService.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %q (id %d, role %s)\n", created.Username, created.ID, created.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "Login name (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password, 8 to 72 characters (required)")
	cmd.Flags().StringVar(&req.Role, "role", "admin", "Role: admin or viewer")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func connect() (*config.Config, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(logger.New(os.Stderr, logger.ParseLevel(cfg.App.LogLevel), cfg.App.Env))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: 1,
		MinConns: 0,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}
