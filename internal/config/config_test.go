package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: filepath.Join(tmp, "fintrack.db"),
				Slot:         "finance-transactions",
				LogLevel:     "info",
			},
			wantErr: false,
		},
		{
			name: "valid file backend config",
			config: Config{
				DataBackend: "file",
				DataFile:    filepath.Join(tmp, "transactions.json"),
				Slot:        "finance-transactions",
				LogLevel:    "debug",
			},
			wantErr: false,
		},
		{
			name: "valid badger backend config",
			config: Config{
				DataBackend: "badger",
				BadgerDir:   filepath.Join(tmp, "badger"),
				Slot:        "finance-transactions",
				LogLevel:    "warn",
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "memory",
				Slot:        "finance-transactions",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'memory'",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				DataBackend: "sqlite",
				Slot:        "finance-transactions",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "file backend missing data file",
			config: Config{
				DataBackend: "file",
				Slot:        "finance-transactions",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "data file path cannot be empty",
		},
		{
			name: "badger backend missing directory",
			config: Config{
				DataBackend: "badger",
				Slot:        "finance-transactions",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "badger directory cannot be empty",
		},
		{
			name: "empty slot name",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: filepath.Join(tmp, "fintrack.db"),
				Slot:         "",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "slot name cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: filepath.Join(tmp, "fintrack.db"),
				Slot:         "finance-transactions",
				LogLevel:     "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend expected sqlite, got %q", cfg.DataBackend)
	}
	if cfg.Slot != "finance-transactions" {
		t.Fatalf("default slot expected finance-transactions, got %q", cfg.Slot)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level expected info, got %q", cfg.LogLevel)
	}
}
