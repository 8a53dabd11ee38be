package core

import (
	"testing"
	"time"
)

func txn(id string, cents int64, typ Type, cat Category, date time.Time) Transaction {
	return Transaction{
		ID:       id,
		Title:    "txn " + id,
		Amount:   Money{Cents: cents},
		Type:     typ,
		Category: cat,
		Date:     date,
	}
}

func TestBalanceScenario(t *testing.T) {
	txns := []Transaction{
		txn("1", 100000, Income, Salary, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
		txn("2", 20000, Expense, Food, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
	}

	if got := Balance(txns); got.Cents != 80000 {
		t.Fatalf("balance expected 80000, got %d", got.Cents)
	}

	grouped := GroupByCategory(txns, Expense)
	if len(grouped) != 1 {
		t.Fatalf("expected one expense category, got %d", len(grouped))
	}
	if grouped[Food].Cents != 20000 {
		t.Fatalf("food expected 20000, got %d", grouped[Food].Cents)
	}
}

func TestBalanceIdentity(t *testing.T) {
	txns := []Transaction{
		txn("a", 500, Income, Salary, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)),
		txn("b", 300, Expense, Bills, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)),
		txn("c", 900, Expense, Health, time.Date(2025, time.February, 4, 0, 0, 0, 0, time.UTC)),
	}
	want := TotalByType(txns, Income).Cents - TotalByType(txns, Expense).Cents
	if got := Balance(txns).Cents; got != want {
		t.Fatalf("balance identity broken: got %d, want %d", got, want)
	}
}

func TestEmptyMonthYieldsZeroAggregates(t *testing.T) {
	txns := []Transaction{
		txn("a", 500, Income, Salary, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)),
	}
	empty := FilterByMonth(txns, MonthYear{Year: 2025, Month: time.June})
	if len(empty) != 0 {
		t.Fatalf("expected empty month, got %d records", len(empty))
	}
	if Balance(empty).Cents != 0 || TotalByType(empty, Income).Cents != 0 {
		t.Fatal("empty month must aggregate to zero")
	}
	if grouped := GroupByCategory(empty, Expense); len(grouped) != 0 {
		t.Fatal("empty month must yield an empty grouped map")
	}
}

func TestSummaryStatsNoExpenses(t *testing.T) {
	txns := []Transaction{
		txn("a", 500, Income, Salary, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)),
		txn("b", 700, Income, Other, time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)),
	}
	stats := SummaryStats(txns)
	if stats.Count != 2 {
		t.Fatalf("count expected 2, got %d", stats.Count)
	}
	if stats.AverageExpense.Cents != 0 || stats.MaxExpense.Cents != 0 {
		t.Fatal("no expenses must yield zero average and max")
	}
}

func TestSummaryStats(t *testing.T) {
	txns := []Transaction{
		txn("a", 100000, Income, Salary, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
		txn("b", 1000, Expense, Food, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)),
		txn("c", 3000, Expense, Transport, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)),
	}
	stats := SummaryStats(txns)
	if stats.Count != 3 {
		t.Fatalf("count expected 3, got %d", stats.Count)
	}
	if stats.AverageExpense.Cents != 2000 {
		t.Fatalf("average expected 2000, got %d", stats.AverageExpense.Cents)
	}
	if stats.MaxExpense.Cents != 3000 {
		t.Fatalf("max expected 3000, got %d", stats.MaxExpense.Cents)
	}
}

func TestFilterByMonthPartition(t *testing.T) {
	txns := []Transaction{
		txn("a", 100, Expense, Food, time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)),
		txn("b", 200, Expense, Food, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
		txn("c", 300, Income, Salary, time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)),
		txn("d", 400, Expense, Bills, time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC)),
	}

	months := []MonthYear{
		{2024, time.December},
		{2025, time.January},
		{2025, time.February},
	}
	seen := make(map[string]int)
	total := 0
	for _, my := range months {
		for _, tx := range FilterByMonth(txns, my) {
			seen[tx.ID]++
			total++
		}
	}
	if total != len(txns) {
		t.Fatalf("union of months expected %d records, got %d", len(txns), total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("record %q appeared in %d month filters", id, n)
		}
	}
}

func TestSortByDateDescStable(t *testing.T) {
	sameDay := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	txns := []Transaction{
		txn("old", 100, Expense, Food, time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)),
		txn("tie-1", 200, Expense, Food, sameDay),
		txn("tie-2", 300, Expense, Food, sameDay),
		txn("new", 400, Expense, Food, time.Date(2025, time.March, 20, 9, 0, 0, 0, time.UTC)),
	}
	sorted := SortByDateDesc(txns)
	gotIDs := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	wantIDs := []string{"new", "tie-1", "tie-2", "old"}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("position %d expected %q, got %q", i, wantIDs[i], gotIDs[i])
		}
	}
	if txns[0].ID != "old" {
		t.Fatal("input slice must not be reordered")
	}
}

func TestBuildMonthOverview(t *testing.T) {
	my := MonthYear{Year: 2024, Month: time.March}
	txns := []Transaction{
		txn("1", 100000, Income, Salary, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
		txn("2", 20000, Expense, Food, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		txn("3", 5000, Expense, Transport, time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)),
		txn("4", 999999, Expense, Shopping, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)), // outside month
	}
	overview := BuildMonthOverview(txns, my)
	if overview.Income.Cents != 100000 || overview.Expenses.Cents != 25000 {
		t.Fatalf("totals wrong: income %d, expenses %d", overview.Income.Cents, overview.Expenses.Cents)
	}
	if overview.Balance.Cents != 75000 {
		t.Fatalf("balance expected 75000, got %d", overview.Balance.Cents)
	}
	if len(overview.ByCategory) != 2 {
		t.Fatalf("expected 2 expense categories, got %d", len(overview.ByCategory))
	}
	// Largest amount first
	if overview.ByCategory[0].Category != Food || overview.ByCategory[1].Category != Transport {
		t.Fatalf("unexpected breakdown order: %+v", overview.ByCategory)
	}
	if overview.Stats.Count != 3 {
		t.Fatalf("stats count expected 3, got %d", overview.Stats.Count)
	}
}

func TestSeedCollection(t *testing.T) {
	now := time.Date(2026, time.August, 29, 15, 0, 0, 0, time.UTC)
	seed := SeedCollection(now)
	if len(seed) == 0 {
		t.Fatal("seed must not be empty")
	}
	again := SeedCollection(now)
	if len(again) != len(seed) {
		t.Fatal("seed must be deterministic for a fixed reference time")
	}
	my := MonthOf(now)
	for i, tx := range seed {
		if err := tx.Validate(); err != nil {
			t.Fatalf("seed record %d invalid: %v", i, err)
		}
		if !my.Contains(tx.Date) {
			t.Fatalf("seed record %d dated outside the reference month", i)
		}
		if seed[i] != again[i] {
			t.Fatalf("seed record %d not deterministic", i)
		}
	}
}
