package backend

import (
	"context"

	"fintrack/internal/store"
)

// Type identifies a persistence backend.
type Type string

const (
	SQLite Type = "sqlite"
	File   Type = "file"
	Badger Type = "badger"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLite, File, Badger:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{SQLite, File, Badger}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// StoreResult contains the store instance and optional cleanup function
type StoreResult struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*StoreResult, error)
}

// Config holds configuration for store creation
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// File specific
	DataFile string

	// Badger specific
	BadgerDir string

	// Slot name shared by all backends
	Slot string
}
