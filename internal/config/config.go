package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var ErrMissingValue = errors.New("config value is not set")

type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	DatabaseDSN   string        `env:"DATABASE_URI"`
	MigrationsDir string        `env:"MIGRATIONS_DIR"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"`
	ReportPath    string        `env:"REPORT_PATH"`
	LogLevel      string        `env:"LOG_LEVEL"`
	EnvFile       string        `env:"-"`
}

const defaultTokenTTL = 24 * time.Hour

// RegisterFlags регистрирует флаги командной строки, значения записываются в flagsConfig.
func RegisterFlags(flags *pflag.FlagSet, flagsConfig *Config) {
	flags.StringVarP(&flagsConfig.RunAddress, "address", "a", "localhost:8080", "Run address in format host:port")
	flags.StringVarP(&flagsConfig.DatabaseDSN, "database", "d", "", "Database DSN")
	flags.StringVarP(&flagsConfig.MigrationsDir, "migrations", "m", "internal/db/migrations",
		"Database migrations directory")
	flags.StringVarP(&flagsConfig.JWTSecret, "jwt-secret", "k", "", "Secret key for session tokens")
	flags.DurationVar(&flagsConfig.TokenTTL, "token-ttl", defaultTokenTTL, "Session token lifetime")
	flags.StringVarP(&flagsConfig.ReportPath, "out", "o", "report.csv", "Report CSV file path")
	flags.StringVar(&flagsConfig.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&flagsConfig.EnvFile, "env-file", ".env", "Optional dotenv file loaded before parsing env")
}

// Load собирает конфигурацию: переменные окружения (в т.ч. из .env файла) приоритетнее флагов.
func Load(flagsConfig *Config) (*Config, error) {
	if flagsConfig.EnvFile != "" {
		if err := godotenv.Load(flagsConfig.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	var envConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, fmt.Errorf("%w: database DSN", ErrMissingValue)
	}
	return conf, nil
}

// RequireJWTSecret секрет нужен только http серверу.
func (c *Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("%w: jwt secret", ErrMissingValue)
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	ttl := envConfig.TokenTTL
	if ttl <= 0 {
		ttl = flagsConfig.TokenTTL
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:     defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		TokenTTL:      ttl,
		ReportPath:    defaultIfBlank(envConfig.ReportPath, flagsConfig.ReportPath),
		LogLevel:      defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		EnvFile:       flagsConfig.EnvFile,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
