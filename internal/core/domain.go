package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  Type = "income"
	Expense Type = "expense"
)

const (
	Salary        Category = "salary"
	Food          Category = "food"
	Transport     Category = "transport"
	Shopping      Category = "shopping"
	Entertainment Category = "entertainment"
	Bills         Category = "bills"
	Health        Category = "health"
	Other         Category = "other"
)

type (
	// Type tells whether a transaction credits or debits the balance.
	// The stored amount is always non-negative; the sign is derived
	// from the type at aggregation time.
	Type string

	// Category is a member of the closed category enumeration.
	Category string

	// Transaction is the sole persisted entity. ID is assigned at
	// creation and immutable; it is the merge/de-duplication key.
	Transaction struct {
		ID       string    `json:"id"`
		Title    string    `json:"title"`
		Amount   Money     `json:"amount"`
		Type     Type      `json:"type"`
		Category Category  `json:"category"`
		Date     time.Time `json:"date"`
		Note     string    `json:"note,omitempty"`
	}

	// Fields holds everything of a Transaction except its identity.
	// Add and Edit operate on Fields; the ledger owns id assignment.
	Fields struct {
		Title    string
		Amount   Money
		Type     Type
		Category Category
		Date     time.Time
		Note     string
	}
)

var (
	ErrEmptyID         = errors.New("empty transaction id")
	ErrEmptyTitle      = errors.New("empty title")
	ErrTitleTooLong    = errors.New("title too long (max 200 characters)")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidCategory = errors.New("invalid category")
	ErrZeroDate        = errors.New("date cannot be zero")
)

// IsValid reports whether t is a member of the closed type set.
func (t Type) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

// IsValid reports whether c is a member of the closed category set.
// There is no dynamic extension of categories.
func (c Category) IsValid() bool {
	switch c {
	case Salary, Food, Transport, Shopping, Entertainment, Bills, Health, Other:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// Categories returns every member of the closed category enumeration,
// in display order.
func Categories() []Category {
	return []Category{Salary, Food, Transport, Shopping, Entertainment, Bills, Health, Other}
}

func (f Fields) Validate() error {
	if len(strings.TrimSpace(f.Title)) == 0 {
		return ErrEmptyTitle
	}
	if len(f.Title) > 200 {
		return ErrTitleTooLong
	}
	if err := f.Amount.Validate(); err != nil {
		return err
	}
	if !f.Type.IsValid() {
		return ErrInvalidType
	}
	if !f.Category.IsValid() {
		return ErrInvalidCategory
	}
	if f.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// Validate checks structural validity of a single record. Consumers
// receiving untrusted data (an imported document, a stored payload)
// must call this before admitting the record to the collection;
// records failing validation are rejected, never coerced.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	return t.fields().Validate()
}

func (t Transaction) fields() Fields {
	return Fields{
		Title:    t.Title,
		Amount:   t.Amount,
		Type:     t.Type,
		Category: t.Category,
		Date:     t.Date,
		Note:     t.Note,
	}
}

// Apply returns a copy of t with all mutable fields replaced by f.
// The id is preserved; it is the only immutable field.
func (t Transaction) Apply(f Fields) Transaction {
	return Transaction{
		ID:       t.ID,
		Title:    f.Title,
		Amount:   f.Amount,
		Type:     f.Type,
		Category: f.Category,
		Date:     f.Date,
		Note:     f.Note,
	}
}
