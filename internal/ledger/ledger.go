// Package ledger owns the in-memory transaction collection and its
// mutation API. Mutations are applied sequentially, and every accepted
// mutation is persisted as a whole-collection snapshot before it
// becomes visible; the stored slot never reflects a partial change.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/store"
)

// ErrNotFound is returned by Edit when the target id is absent from
// the collection. Remove treats an absent id as a no-op instead.
var ErrNotFound = errors.New("transaction not found")

const (
	overviewCacheSize = 24
	overviewCacheTTL  = 5 * time.Minute
)

// Ledger wraps the collection and the persistence adapter. It is not
// safe for concurrent use; the application is single-session and all
// mutations arrive in the order the user issues them.
type Ledger struct {
	store     store.Store
	txns      []core.Transaction
	overviews cache.Cache[core.MonthOverview]
}

// Open loads the collection from the store. First run and corruption
// recovery are handled inside the adapter, so a non-nil error here
// means storage itself is unusable.
func Open(ctx context.Context, st store.Store) (*Ledger, error) {
	txns, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	slog.InfoContext(ctx, "Collection loaded", "count", len(txns))
	return &Ledger{
		store:     st,
		txns:      txns,
		overviews: cache.NewLRU[core.MonthOverview](overviewCacheSize, overviewCacheTTL),
	}, nil
}

// Transactions returns a snapshot copy of the whole collection.
func (l *Ledger) Transactions() []core.Transaction {
	out := make([]core.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

func (l *Ledger) Len() int {
	return len(l.txns)
}

// Find returns the transaction with the given id, if present.
func (l *Ledger) Find(id string) (core.Transaction, bool) {
	for _, t := range l.txns {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// Add validates the fields, assigns a fresh id and prepends the new
// record. UUIDs cannot collide with any existing id, including under
// rapid successive creation.
func (l *Ledger) Add(ctx context.Context, f core.Fields) (core.Transaction, error) {
	if err := f.Validate(); err != nil {
		return core.Transaction{}, err
	}

	t := core.Transaction{ID: uuid.NewString()}.Apply(f)
	next := make([]core.Transaction, 0, len(l.txns)+1)
	next = append(next, t)
	next = append(next, l.txns...)

	if err := l.persist(ctx, next); err != nil {
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction added",
		"id", t.ID, "type", t.Type, "category", t.Category, "amount_cents", t.Amount.Cents)
	return t, nil
}

// Edit replaces all mutable fields of the record with the given id,
// preserving the id itself. A missing id is a caller logic error and
// surfaces as ErrNotFound.
func (l *Ledger) Edit(ctx context.Context, id string, f core.Fields) (core.Transaction, error) {
	if err := f.Validate(); err != nil {
		return core.Transaction{}, err
	}

	idx := -1
	for i, t := range l.txns {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.Transaction{}, ErrNotFound
	}

	next := make([]core.Transaction, len(l.txns))
	copy(next, l.txns)
	next[idx] = next[idx].Apply(f)

	if err := l.persist(ctx, next); err != nil {
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction updated", "id", id)
	return next[idx], nil
}

// Remove deletes the record with the given id. Removing an absent id
// is an idempotent no-op: nothing changes and nothing is persisted.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	next := make([]core.Transaction, 0, len(l.txns))
	for _, t := range l.txns {
		if t.ID != id {
			next = append(next, t)
		}
	}
	if len(next) == len(l.txns) {
		slog.DebugContext(ctx, "Remove skipped, id not present", "id", id)
		return nil
	}

	if err := l.persist(ctx, next); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Transaction removed", "id", id)
	return nil
}

// Merge appends every incoming record whose id is not already present;
// duplicates are dropped, which makes merge idempotent. Returns how
// many records were added.
func (l *Ledger) Merge(ctx context.Context, incoming []core.Transaction) (int, error) {
	existing := make(map[string]struct{}, len(l.txns))
	for _, t := range l.txns {
		existing[t.ID] = struct{}{}
	}

	next := make([]core.Transaction, len(l.txns), len(l.txns)+len(incoming))
	copy(next, l.txns)
	added := 0
	for _, t := range incoming {
		if _, dup := existing[t.ID]; dup {
			continue
		}
		existing[t.ID] = struct{}{}
		next = append(next, t)
		added++
	}

	if added == 0 {
		slog.InfoContext(ctx, "Merge added nothing, all ids already present", "incoming", len(incoming))
		return 0, nil
	}

	if err := l.persist(ctx, next); err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Collections merged",
		"incoming", len(incoming), "added", added, "duplicates", len(incoming)-added)
	return added, nil
}

// MonthOverview returns the derived view for a month, memoised until
// the next mutation.
func (l *Ledger) MonthOverview(my core.MonthYear) core.MonthOverview {
	key := fmt.Sprintf("%04d-%02d", my.Year, int(my.Month))
	if overview, ok := l.overviews.Get(key); ok {
		return overview
	}
	overview := core.BuildMonthOverview(l.txns, my)
	l.overviews.Set(key, overview)
	return overview
}

// persist saves the candidate snapshot first and only then makes it
// the current collection, so a failed save leaves memory and storage
// agreeing on the previous state.
func (l *Ledger) persist(ctx context.Context, next []core.Transaction) error {
	if err := l.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	l.txns = next
	l.overviews.Purge()
	return nil
}
