package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/orderflow/internal/config"
	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/operations"
	"github.com/fsdevblog/orderflow/internal/report"
	"github.com/fsdevblog/orderflow/internal/repository/pgrepo"
	"github.com/fsdevblog/orderflow/internal/transport/api"
	"github.com/fsdevblog/orderflow/pkg/store"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Serve применяет миграции и запускает http сервер до отмены ctx.
func (a *App) Serve(ctx context.Context) error {
	if err := a.Config.RequireJWTSecret(); err != nil {
		return fmt.Errorf("app serve: %w", err)
	}

	a.Logger.WithFields(logrus.Fields{
		"address":    a.Config.RunAddress,
		"migrations": a.Config.MigrationsDir,
		"token_ttl":  a.Config.TokenTTL.String(),
	}).Info("starting server")

	pool, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app serve: %w", connErr)
	}
	defer pool.Close()

	router, routerErr := api.New(api.RouterArgs{
		Logger:       a.Logger,
		Provider:     api.NewStoreProvider(store.NewPoolConn(pool), a.Logger),
		JWTSecretKey: []byte(a.Config.JWTSecret),
		TokenTTL:     a.Config.TokenTTL,
	})
	if routerErr != nil {
		return fmt.Errorf("app serve: %w", routerErr)
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("server shutdown")
		}
		return ctx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return fmt.Errorf("app serve: %w", err)
	}
}

// Migrate только применяет миграции схемы.
func (a *App) Migrate() error {
	if err := pgrepo.Migrate(a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger); err != nil {
		return fmt.Errorf("app migrate: %w", err)
	}
	return nil
}

// Report выгружает отчет за 30 дней в CSV файл от имени администратора adminEmail
// (пустой email означает первого администратора). Возвращает количество строк.
func (a *App) Report(ctx context.Context, adminEmail string) (int, error) {
	pool, connErr := pgrepo.Connect(ctx, "", a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return 0, fmt.Errorf("app report: %w", connErr)
	}
	defer pool.Close()

	gw := store.NewGateway(store.NewPoolConn(pool), a.Logger)
	defer gw.Close(context.WithoutCancel(ctx))

	admin, authErr := operations.LookupUser(ctx, gw, domain.RoleAdmin, adminEmail)
	if authErr != nil {
		return 0, fmt.Errorf("app report: %w", authErr)
	}

	t, dataErr := operations.NewAdmin(admin, gw, a.Logger).ReportData(ctx)
	if dataErr != nil {
		return 0, fmt.Errorf("app report: %w", dataErr)
	}
	if err := report.WriteCSVFile(a.Config.ReportPath, t.Columns, t.Rows); err != nil {
		return 0, fmt.Errorf("app report: %w", err)
	}

	a.Logger.WithFields(logrus.Fields{"path": a.Config.ReportPath, "rows": len(t.Rows)}).Info("report saved")
	return len(t.Rows), nil
}

// SetPassword задает пароль входа в API пользователю с указанным email.
func (a *App) SetPassword(ctx context.Context, email, password string) error {
	pool, connErr := pgrepo.Connect(ctx, "", a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app set password: %w", connErr)
	}
	defer pool.Close()

	gw := store.NewGateway(store.NewPoolConn(pool), a.Logger)
	defer gw.Close(context.WithoutCancel(ctx))

	if err := operations.SetPassword(ctx, gw, email, password); err != nil {
		return fmt.Errorf("app set password: %w", err)
	}
	a.Logger.WithField("email", email).Info("password updated")
	return nil
}
