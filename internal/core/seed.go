package core

import "time"

// SeedCollection is the fixed starter dataset returned on first run and
// after storage corruption recovery, so the user always sees a
// populated view. Records are dated inside the month containing now;
// everything else about them is constant, ids included. Seed ids use a
// reserved prefix that the ledger never generates.
func SeedCollection(now time.Time) []Transaction {
	day := func(d, hour int) time.Time {
		return time.Date(now.Year(), now.Month(), d, hour, 0, 0, 0, now.Location())
	}
	return []Transaction{
		{
			ID:       "seed-01",
			Title:    "Monthly salary",
			Amount:   Money{Cents: 350000},
			Type:     Income,
			Category: Salary,
			Date:     day(1, 9),
		},
		{
			ID:       "seed-02",
			Title:    "Groceries",
			Amount:   Money{Cents: 8420},
			Type:     Expense,
			Category: Food,
			Date:     day(3, 18),
			Note:     "Weekly shop",
		},
		{
			ID:       "seed-03",
			Title:    "Bus pass",
			Amount:   Money{Cents: 4500},
			Type:     Expense,
			Category: Transport,
			Date:     day(4, 8),
		},
		{
			ID:       "seed-04",
			Title:    "Electricity bill",
			Amount:   Money{Cents: 6230},
			Type:     Expense,
			Category: Bills,
			Date:     day(7, 12),
		},
		{
			ID:       "seed-05",
			Title:    "Cinema night",
			Amount:   Money{Cents: 2800},
			Type:     Expense,
			Category: Entertainment,
			Date:     day(9, 20),
			Note:     "Two tickets",
		},
		{
			ID:       "seed-06",
			Title:    "New shoes",
			Amount:   Money{Cents: 7999},
			Type:     Expense,
			Category: Shopping,
			Date:     day(11, 16),
		},
	}
}
