// Package cli provides common CLI initialization utilities shared by
// the fintrack entrypoint: logging, env loading, config validation and
// store construction.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"fintrack/internal/backend"
	"fintrack/internal/config"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
)

// SetupLogger initializes structured logging at the configured level
// and sets it as the process default.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenLedger builds the configured store backend and loads the ledger
// from it. Returns the ledger and the backend cleanup function, or
// exits the process on failure.
func OpenLedger(ctx context.Context, logger *log.Logger, cfg *config.Config) (*ledger.Ledger, backend.CleanupFunc) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}
	if err := backendCfg.Validate(); err != nil {
		logger.Error("Invalid backend configuration", log.FieldError, err)
		os.Exit(1)
	}

	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize store",
			log.FieldError, err, log.FieldBackend, backendCfg.Type)
		os.Exit(1)
	}

	led, err := ledger.Open(ctx, result.Store)
	if err != nil {
		logger.Error("Failed to load collection", log.FieldError, err)
		if result.Cleanup != nil {
			_ = result.Cleanup()
		}
		os.Exit(1)
	}

	cleanup := result.Cleanup
	if cleanup == nil {
		cleanup = func() error { return nil }
	}
	return led, cleanup
}
