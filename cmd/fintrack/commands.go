package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/exchange"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
)

type addCmd struct {
	Title    string `required:"" help:"Short display label."`
	Amount   string `required:"" help:"Non-negative amount, e.g. 12.50."`
	Type     string `default:"expense" enum:"income,expense" help:"Transaction type."`
	Category string `required:"" help:"One of: salary, food, transport, shopping, entertainment, bills, health, other."`
	Date     string `help:"Transaction date, RFC 3339 or YYYY-MM-DD (default: now)."`
	Note     string `help:"Optional free-text note."`
}

type listCmd struct {
	Month string `help:"Month to list as YYYY-MM (default: current month)."`
	All   bool   `help:"List the whole collection, every month."`
}

type summaryCmd struct {
	Month string `help:"Month to summarize as YYYY-MM (default: current month)."`
}

type editCmd struct {
	ID       string  `arg:"" required:"" help:"Id of the transaction to edit."`
	Title    *string `help:"New title."`
	Amount   *string `help:"New amount, e.g. 12.50."`
	Type     *string `help:"New type: income or expense."`
	Category *string `help:"New category."`
	Date     *string `help:"New date, RFC 3339 or YYYY-MM-DD."`
	Note     *string `help:"New note (empty string clears it)."`
}

type removeCmd struct {
	ID string `arg:"" required:"" help:"Id of the transaction to delete."`
}

type exportCmd struct {
	Out string `help:"Output file (default: finance-tracker-<date>.json)."`
}

type importCmd struct {
	File string `arg:"" required:"" help:"JSON document to merge in."`
}

func (c *addCmd) Run(app *appContext) error {
	cents, err := core.ParseDecimalToCents(c.Amount)
	if err != nil {
		return fmt.Errorf("amount %q: %w", c.Amount, err)
	}
	date, err := parseDate(c.Date, app.now())
	if err != nil {
		return err
	}
	if !core.Category(c.Category).IsValid() {
		return fmt.Errorf("category %q: %w", c.Category, core.ErrInvalidCategory)
	}

	t, err := app.ledger.Add(app.ctx, core.Fields{
		Title:    c.Title,
		Amount:   core.Money{Cents: cents},
		Type:     core.Type(c.Type),
		Category: core.Category(c.Category),
		Date:     date,
		Note:     c.Note,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s %q (%s)\n", signFor(t.Type), t.Amount, t.Title, t.ID)
	return nil
}

func (c *listCmd) Run(app *appContext) error {
	txns := app.ledger.Transactions()
	if !c.All {
		my, err := parseMonth(c.Month, app.now())
		if err != nil {
			return err
		}
		txns = core.FilterByMonth(txns, my)
		if len(txns) == 0 {
			fmt.Println("No transactions this month")
			return nil
		}
	}
	if len(txns) == 0 {
		fmt.Println("No transactions")
		return nil
	}

	for _, t := range core.SortByDateDesc(txns) {
		line := fmt.Sprintf("%s  %s %9s  %-14s %s",
			t.Date.Format("2006-01-02"), signFor(t.Type), t.Amount, t.Category.Label(), t.Title)
		if t.Note != "" {
			line += "  (" + t.Note + ")"
		}
		fmt.Println(line)
		fmt.Printf("            id: %s\n", t.ID)
	}
	return nil
}

func (c *summaryCmd) Run(app *appContext) error {
	my, err := parseMonth(c.Month, app.now())
	if err != nil {
		return err
	}
	overview := app.ledger.MonthOverview(my)

	fmt.Printf("%s %d\n\n", my.Month, my.Year)
	fmt.Printf("  Balance:   %s\n", overview.Balance)
	fmt.Printf("  Income:    %s\n", overview.Income)
	fmt.Printf("  Expenses:  %s\n", overview.Expenses)

	if len(overview.ByCategory) > 0 {
		fmt.Println("\nSpending by category:")
		for _, ca := range overview.ByCategory {
			fmt.Printf("  %-14s %9s\n", ca.Category.Label(), ca.Amount)
		}
	}

	fmt.Println("\nQuick stats:")
	fmt.Printf("  Transactions:     %d\n", overview.Stats.Count)
	fmt.Printf("  Average expense:  %s\n", overview.Stats.AverageExpense)
	fmt.Printf("  Largest expense:  %s\n", overview.Stats.MaxExpense)
	return nil
}

func (c *editCmd) Run(app *appContext) error {
	existing, ok := app.ledger.Find(c.ID)
	if !ok {
		return fmt.Errorf("transaction %s: %w", c.ID, ledger.ErrNotFound)
	}

	fields := core.Fields{
		Title:    existing.Title,
		Amount:   existing.Amount,
		Type:     existing.Type,
		Category: existing.Category,
		Date:     existing.Date,
		Note:     existing.Note,
	}
	if c.Title != nil {
		fields.Title = *c.Title
	}
	if c.Amount != nil {
		cents, err := core.ParseDecimalToCents(*c.Amount)
		if err != nil {
			return fmt.Errorf("amount %q: %w", *c.Amount, err)
		}
		fields.Amount = core.Money{Cents: cents}
	}
	if c.Type != nil {
		if !core.Type(*c.Type).IsValid() {
			return fmt.Errorf("type %q: %w", *c.Type, core.ErrInvalidType)
		}
		fields.Type = core.Type(*c.Type)
	}
	if c.Category != nil {
		if !core.Category(*c.Category).IsValid() {
			return fmt.Errorf("category %q: %w", *c.Category, core.ErrInvalidCategory)
		}
		fields.Category = core.Category(*c.Category)
	}
	if c.Date != nil {
		date, err := parseDate(*c.Date, app.now())
		if err != nil {
			return err
		}
		fields.Date = date
	}
	if c.Note != nil {
		fields.Note = *c.Note
	}

	updated, err := app.ledger.Edit(app.ctx, c.ID, fields)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return fmt.Errorf("transaction %s: %w", c.ID, err)
		}
		return err
	}

	fmt.Printf("Updated %q (%s)\n", updated.Title, updated.ID)
	return nil
}

func (c *removeCmd) Run(app *appContext) error {
	_, present := app.ledger.Find(c.ID)
	if err := app.ledger.Remove(app.ctx, c.ID); err != nil {
		return err
	}
	if present {
		fmt.Printf("Removed %s\n", c.ID)
	} else {
		fmt.Printf("Nothing to remove, %s is not in the collection\n", c.ID)
	}
	return nil
}

func (c *exportCmd) Run(app *appContext) error {
	out := c.Out
	if out == "" {
		out = exchange.Filename(app.now())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	txns := app.ledger.Transactions()
	if err := exchange.Export(f, txns); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	app.logger.Info("Collection exported", log.FieldFile, out, log.FieldCount, len(txns))
	fmt.Printf("Exported %d transactions to %s\n", len(txns), out)
	return nil
}

func (c *importCmd) Run(app *appContext) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	res, err := exchange.Import(app.ctx, f)
	if err != nil {
		return fmt.Errorf("import %s: %w", c.File, err)
	}

	added, err := app.ledger.Merge(app.ctx, res.Transactions)
	if err != nil {
		return err
	}

	app.logger.Info("Collection imported",
		log.FieldFile, c.File, log.FieldCount, added, log.FieldSkipped, res.Skipped)
	duplicates := len(res.Transactions) - added
	fmt.Printf("Imported %d transactions (%d duplicates dropped, %d invalid skipped)\n",
		added, duplicates, res.Skipped)
	return nil
}

func signFor(t core.Type) string {
	if t == core.Income {
		return "+"
	}
	return "-"
}

// parseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD day;
// empty input means now.
func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	if d, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use RFC 3339 or YYYY-MM-DD", s)
}

// parseMonth accepts YYYY-MM; empty input means the current month.
func parseMonth(s string, now time.Time) (core.MonthYear, error) {
	if s == "" {
		return core.MonthOf(now), nil
	}
	d, err := time.Parse("2006-01", s)
	if err != nil {
		return core.MonthYear{}, fmt.Errorf("invalid month %q: use YYYY-MM", s)
	}
	return core.MonthOf(d), nil
}
