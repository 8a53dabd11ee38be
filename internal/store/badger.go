package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/core"

	"github.com/dgraph-io/badger/v3"
)

// BadgerStore keeps the collection slot under a single key in an
// embedded Badger database.
type BadgerStore struct {
	db   *badger.DB
	slot string
}

func NewBadgerStore(dir, slot string) (*BadgerStore, error) {
	if slot == "" {
		slot = DefaultSlot
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logger is too chatty for a CLI
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{db: db, slot: slot}, nil
}

func (s *BadgerStore) Load(ctx context.Context) ([]core.Transaction, error) {
	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(s.slot))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return firstRun(ctx, s.slot), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.slot, err)
	}
	return decodeOrSeed(ctx, payload, s.slot), nil
}

// Save replaces the slot value in one write transaction.
func (s *BadgerStore) Save(ctx context.Context, txns []core.Transaction) error {
	payload, err := encodeCollection(txns)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(s.slot), payload)
	})
	if err != nil {
		return fmt.Errorf("write slot %s: %w", s.slot, err)
	}

	slog.DebugContext(ctx, "Collection saved to badger", "slot", s.slot, "count", len(txns))
	return nil
}

func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
