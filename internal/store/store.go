// Package store is the persistence adapter: the whole transaction
// collection lives in one named slot of JSON text, read wholesale at
// startup and rewritten wholesale after every mutation. Durable storage
// is owned exclusively by this package; nothing else reads or writes it.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fintrack/internal/core"
)

// DefaultSlot matches the slot name used by earlier installations.
const DefaultSlot = "finance-transactions"

// Store loads and saves the full collection. Load never surfaces a
// corruption error: a missing or malformed payload falls back to the
// seed collection, and the failure is only logged.
type Store interface {
	Load(ctx context.Context) ([]core.Transaction, error)
	Save(ctx context.Context, txns []core.Transaction) error
	Close() error
}

// encodeCollection serializes the collection the way the export
// document is shaped: a JSON array of transaction records with RFC 3339
// dates, so the slot payload round-trips timestamps exactly.
func encodeCollection(txns []core.Transaction) ([]byte, error) {
	if txns == nil {
		txns = []core.Transaction{}
	}
	return json.MarshalIndent(txns, "", "  ")
}

// decodeOrSeed parses a stored payload. Corrupt or malformed payloads
// are discarded in favor of the seed collection; the parse failure is
// diagnostics only and never propagates to the caller.
func decodeOrSeed(ctx context.Context, payload []byte, slot string) []core.Transaction {
	var txns []core.Transaction
	if err := json.Unmarshal(payload, &txns); err != nil {
		slog.WarnContext(ctx, "Stored collection is corrupt, falling back to seed data",
			"slot", slot, "error", err)
		return core.SeedCollection(time.Now())
	}
	for i, t := range txns {
		if err := t.Validate(); err != nil {
			slog.WarnContext(ctx, "Stored collection is malformed, falling back to seed data",
				"slot", slot, "index", i, "error", err)
			return core.SeedCollection(time.Now())
		}
	}
	return txns
}

// firstRun returns the seed collection for an empty store.
func firstRun(ctx context.Context, slot string) []core.Transaction {
	slog.InfoContext(ctx, "No stored collection found, starting from seed data", "slot", slot)
	return core.SeedCollection(time.Now())
}
