package backend

import (
	"fmt"

	"fintrack/internal/config"
)

// FromAppConfig converts the application config to a backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         backendType,
		SQLiteDBPath: appConfig.SQLiteDBPath,
		DataFile:     appConfig.DataFile,
		BadgerDir:    appConfig.BadgerDir,
		Slot:         appConfig.Slot,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case SQLite:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case File:
		if c.DataFile == "" {
			return fmt.Errorf("data file path is required for file backend")
		}
	case Badger:
		if c.BadgerDir == "" {
			return fmt.Errorf("badger directory is required for badger backend")
		}
	}

	return nil
}
