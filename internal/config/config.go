package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Backend selection
	DataBackend string

	// SQLite backend
	SQLiteDBPath string

	// File backend
	DataFile string

	// Badger backend
	BadgerDir string

	// Slot name holding the serialized collection
	Slot string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("FINTRACK_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("FINTRACK_SQLITE_PATH", "./data/fintrack.db"),
		DataFile:     getEnv("FINTRACK_DATA_FILE", "./data/transactions.json"),
		BadgerDir:    getEnv("FINTRACK_BADGER_DIR", "./data/badger"),
		Slot:         getEnv("FINTRACK_SLOT", "finance-transactions"),
		LogLevel:     getEnv("FINTRACK_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"sqlite", "file", "badger"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if err := ensureDir(filepath.Dir(c.SQLiteDBPath)); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create SQLite database directory: %v", err))
		}
	case "file":
		if c.DataFile == "" {
			errors = append(errors, "data file path cannot be empty when using file backend")
		} else if err := ensureDir(filepath.Dir(c.DataFile)); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create data file directory: %v", err))
		}
	case "badger":
		if c.BadgerDir == "" {
			errors = append(errors, "badger directory cannot be empty when using badger backend")
		} else if err := ensureDir(c.BadgerDir); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create badger directory: %v", err))
		}
	}

	if c.Slot == "" {
		errors = append(errors, "slot name cannot be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func ensureDir(dir string) error {
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
