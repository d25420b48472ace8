package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// драйвер применения миграций к postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// источник миграций из файлов (*.sql).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const (
	maxConnectAttempts = 30
	retryInterval      = 3 * time.Second
)

// Connect открывает пул соединений с повторными попытками и применяет миграции из migrationsDir.
// Пустой migrationsDir пропускает миграции.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	pool, err := connectWithRetry(ctx, dsn, l)
	if err != nil {
		return nil, fmt.Errorf("init postgres connection: %w", err)
	}

	if migrationsDir == "" {
		return pool, nil
	}
	if err := Migrate(migrationsDir, dsn, l); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func connectWithRetry(ctx context.Context, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	for attempt := 1; ; attempt++ {
		pool, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			return pool, nil
		}
		if isFatalConnErr(connErr) {
			if !errors.Is(connErr, ErrFatalConnect) {
				connErr = fmt.Errorf("%w: %s", ErrFatalConnect, connErr.Error())
			}
			return nil, connErr
		}
		if attempt >= maxConnectAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", maxConnectAttempts, connErr)
		}

		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempt, maxConnectAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", retryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		case <-time.After(retryInterval):
		}
	}
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("%w: parse postgres config: %s", ErrFatalConnect, confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %w", poolErr)
	}

	// Проверяем, что соединение работает (Ping)
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", pingErr)
	}

	return pool, nil
}

// Migrate применяет все миграции из dir. Отсутствие новых миграций не ошибка.
func Migrate(dir string, dsn string, l *logrus.Logger) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			l.WithFields(logrus.Fields{"source_error": srcErr, "database_error": dbErr}).
				Warn("close migrate instance")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			l.Info("schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	version, dirty, vErr := m.Version()
	if vErr == nil {
		l.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("schema migrated")
	}
	return nil
}
