package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the collection slot in a single-row table. It is
// the default backend.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

func NewSQLiteStore(dbPath, slot string) (*SQLiteStore, error) {
	if slot == "" {
		slot = DefaultSlot
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db, slot: slot}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]core.Transaction, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM slots WHERE name = ?`, s.slot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return firstRun(ctx, s.slot), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.slot, err)
	}
	return decodeOrSeed(ctx, []byte(payload), s.slot), nil
}

// Save writes the full collection as a single atomic value. The upsert
// runs inside a transaction so the slot never holds a partial payload.
func (s *SQLiteStore) Save(ctx context.Context, txns []core.Transaction) error {
	payload, err := encodeCollection(txns)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO slots (name, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`,
		s.slot, string(payload))
	if err != nil {
		return fmt.Errorf("write slot %s: %w", s.slot, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	slog.DebugContext(ctx, "Collection saved to SQLite", "slot", s.slot, "count", len(txns))
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
