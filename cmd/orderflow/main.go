package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/orderflow/internal/app"
	"github.com/fsdevblog/orderflow/internal/config"
	"github.com/fsdevblog/orderflow/internal/logger"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	var flagsConfig config.Config

	rootCmd := &cobra.Command{
		Use:           "orderflow",
		Short:         "Order lifecycle backend: catalog, orders, payments and audit",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(rootCmd.PersistentFlags(), &flagsConfig)

	rootCmd.AddCommand(serveCmd(&flagsConfig))
	rootCmd.AddCommand(migrateCmd(&flagsConfig))
	rootCmd.AddCommand(reportCmd(&flagsConfig))
	rootCmd.AddCommand(passwdCmd(&flagsConfig))

	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(notifyCtx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newApp собирает конфигурацию и логгер. Вызывается после разбора флагов.
func newApp(flagsConfig *config.Config) (*app.App, error) {
	conf, err := config.Load(flagsConfig)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return app.New(conf, logger.New(os.Stdout, logger.WithLevel(conf.LogLevel))), nil
}

func serveCmd(flagsConfig *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(flagsConfig)
			if err != nil {
				return err
			}
			if serveErr := a.Serve(cmd.Context()); serveErr != nil {
				if errors.Is(serveErr, context.Canceled) {
					a.Logger.Info("graceful shutdown")
					return nil
				}
				return serveErr //nolint:wrapcheck
			}
			return nil
		},
	}
}

func migrateCmd(flagsConfig *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp(flagsConfig)
			if err != nil {
				return err
			}
			return a.Migrate() //nolint:wrapcheck
		},
	}
}

func reportCmd(flagsConfig *config.Config) *cobra.Command {
	var adminEmail string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the 30-day order report to a CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(flagsConfig)
			if err != nil {
				return err
			}
			rows, reportErr := a.Report(cmd.Context(), adminEmail)
			if reportErr != nil {
				return reportErr //nolint:wrapcheck
			}
			cmd.Printf("report saved to %s (%d rows)\n", a.Config.ReportPath, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&adminEmail, "admin", "", "Email of the administrator generating the report")
	return cmd
}

func passwdCmd(flagsConfig *config.Config) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Set the API login password of a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(flagsConfig)
			if err != nil {
				return err
			}
			return a.SetPassword(cmd.Context(), email, password) //nolint:wrapcheck
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email of the user")
	cmd.Flags().StringVar(&password, "password", "", "New password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
