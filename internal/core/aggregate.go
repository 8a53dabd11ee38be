package core

import (
	"sort"
	"time"
)

type (
	// MonthYear is the calendar period used to scope aggregation.
	// Matching compares local year and month fields only; there is no
	// timezone normalization beyond that.
	MonthYear struct {
		Year  int
		Month time.Month
	}

	// CategoryAmount is an amount aggregated under one category.
	CategoryAmount struct {
		Category Category
		Amount   Money
	}

	// Stats is the quick-stats block for a collection snapshot.
	// AverageExpense and MaxExpense are zero when there are no
	// expense records; there is no division-by-zero path.
	Stats struct {
		Count          int
		AverageExpense Money
		MaxExpense     Money
	}

	// MonthOverview is the full derived view for one month: totals,
	// balance, expense breakdown by category and summary stats.
	MonthOverview struct {
		Year       int
		Month      time.Month
		Income     Money
		Expenses   Money
		Balance    Money
		ByCategory []CategoryAmount
		Stats      Stats
	}
)

// MonthOf returns the MonthYear containing t.
func MonthOf(t time.Time) MonthYear {
	return MonthYear{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether t falls inside the month.
func (my MonthYear) Contains(t time.Time) bool {
	return t.Year() == my.Year && t.Month() == my.Month
}

// FilterByMonth returns the subset of txns dated inside the given
// month. A month with no transactions yields an empty slice, never an
// error; every downstream aggregate then reads as zero.
func FilterByMonth(txns []Transaction, my MonthYear) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if my.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// TotalByType sums amounts over records of the given type.
func TotalByType(txns []Transaction, typ Type) Money {
	var cents int64
	for _, t := range txns {
		if t.Type == typ {
			cents += t.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// Balance is total income minus total expenses. It may be negative.
func Balance(txns []Transaction) Money {
	return Money{Cents: TotalByType(txns, Income).Cents - TotalByType(txns, Expense).Cents}
}

// GroupByCategory sums amounts per category, restricted to the given
// type. Categories with no matching records are omitted, not emitted
// with a zero value.
func GroupByCategory(txns []Transaction, typ Type) map[Category]Money {
	out := make(map[Category]Money)
	for _, t := range txns {
		if t.Type != typ {
			continue
		}
		sum := out[t.Category]
		sum.Cents += t.Amount.Cents
		out[t.Category] = sum
	}
	return out
}

// SummaryStats derives the transaction count, average expense and
// largest single expense from a snapshot.
func SummaryStats(txns []Transaction) Stats {
	stats := Stats{Count: len(txns)}
	var expenseCents int64
	var expenseCount int64
	for _, t := range txns {
		if t.Type != Expense {
			continue
		}
		expenseCents += t.Amount.Cents
		expenseCount++
		if t.Amount.Cents > stats.MaxExpense.Cents {
			stats.MaxExpense = t.Amount
		}
	}
	if expenseCount > 0 {
		stats.AverageExpense = Money{Cents: expenseCents / expenseCount}
	}
	return stats
}

// SortByDateDesc returns a copy ordered most recent first. The sort is
// stable: records sharing a date keep their insertion order.
func SortByDateDesc(txns []Transaction) []Transaction {
	out := make([]Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// BuildMonthOverview composes the monthly aggregates for display. The
// category breakdown covers expenses only and is ordered largest
// amount first, ties by enumeration order, so output is deterministic.
func BuildMonthOverview(txns []Transaction, my MonthYear) MonthOverview {
	month := FilterByMonth(txns, my)
	overview := MonthOverview{
		Year:     my.Year,
		Month:    my.Month,
		Income:   TotalByType(month, Income),
		Expenses: TotalByType(month, Expense),
		Balance:  Balance(month),
		Stats:    SummaryStats(month),
	}
	grouped := GroupByCategory(month, Expense)
	for _, c := range Categories() {
		if amount, ok := grouped[c]; ok {
			overview.ByCategory = append(overview.ByCategory, CategoryAmount{Category: c, Amount: amount})
		}
	}
	sort.SliceStable(overview.ByCategory, func(i, j int) bool {
		return overview.ByCategory[i].Amount.Cents > overview.ByCategory[j].Amount.Cents
	})
	return overview
}
