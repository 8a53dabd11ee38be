// Package exchange serializes the collection to a portable JSON
// document and parses such documents back, for moving data between
// installations. Import never touches the existing collection; callers
// merge the result through the ledger.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fintrack/internal/core"
)

// ErrNotArray is the format error for documents whose top level is not
// a sequence of transaction-like records. The caller's collection is
// left unmodified when it is returned.
var ErrNotArray = errors.New("import document is not an array of transactions")

// Result is the outcome of parsing an import document. Skipped counts
// records that failed structural validation; they are dropped without
// failing the whole document.
type Result struct {
	Transactions []core.Transaction
	Skipped      int
}

// Export writes the entire collection, all months unfiltered, as an
// indented JSON array. The document is self-describing and loadable by
// Import on any installation.
func Export(w io.Writer, txns []core.Transaction) error {
	if txns == nil {
		txns = []core.Transaction{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(txns); err != nil {
		return fmt.Errorf("encode export document: %w", err)
	}
	return nil
}

// Filename returns the stamped default export file name, e.g.
// "finance-tracker-2026-08-29.json".
func Filename(now time.Time) string {
	return "finance-tracker-" + now.Format("2006-01-02") + ".json"
}

// Import parses a document. The top level must be a JSON array or the
// whole operation fails with ErrNotArray. Each element is then
// validated individually; invalid elements are skipped and counted,
// never coerced.
func Import(ctx context.Context, r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read import document: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Result{}, ErrNotArray
	}

	res := Result{Transactions: make([]core.Transaction, 0, len(raw))}
	for i, msg := range raw {
		var t core.Transaction
		if err := json.Unmarshal(msg, &t); err != nil {
			slog.WarnContext(ctx, "Skipping unparsable record", "index", i, "error", err)
			res.Skipped++
			continue
		}
		if err := t.Validate(); err != nil {
			slog.WarnContext(ctx, "Skipping invalid record", "index", i, "error", err)
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, t)
	}
	return res, nil
}
