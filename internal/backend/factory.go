package backend

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/store"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*StoreResult, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLite:
		return f.createSQLiteStore(config)
	case File:
		return f.createFileStore(config)
	case Badger:
		return f.createBadgerStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*StoreResult, error) {
	s, err := store.NewSQLiteStore(config.SQLiteDBPath, config.Slot)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite store: %w", err)
	}

	f.logger.Info("Initialized SQLite store", "db_path", config.SQLiteDBPath, "slot", config.Slot)

	return &StoreResult{Store: s, Cleanup: s.Close}, nil
}

func (f *DefaultFactory) createFileStore(config Config) (*StoreResult, error) {
	s := store.NewFileStore(config.DataFile)

	f.logger.Info("Initialized file store", "path", config.DataFile)

	return &StoreResult{Store: s, Cleanup: nil}, nil
}

func (f *DefaultFactory) createBadgerStore(config Config) (*StoreResult, error) {
	s, err := store.NewBadgerStore(config.BadgerDir, config.Slot)
	if err != nil {
		return nil, fmt.Errorf("initialize badger store: %w", err)
	}

	f.logger.Info("Initialized badger store", "dir", config.BadgerDir, "slot", config.Slot)

	return &StoreResult{Store: s, Cleanup: s.Close}, nil
}
