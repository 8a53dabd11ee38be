package main

import (
	"testing"
	"time"

	"fintrack/internal/core"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)

	got, err := parseDate("", now)
	if err != nil || !got.Equal(now) {
		t.Fatalf("empty date expected now, got %v (err=%v)", got, err)
	}

	got, err = parseDate("2024-03-05T18:45:00Z", now)
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Hour() != 18 || got.Day() != 5 {
		t.Fatalf("unexpected parsed time %v", got)
	}

	got, err = parseDate("2024-03-05", now)
	if err != nil {
		t.Fatalf("day only: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 5 {
		t.Fatalf("unexpected parsed day %v", got)
	}

	if _, err := parseDate("yesterday", now); err == nil {
		t.Fatal("expected error for unparsable date")
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)

	my, err := parseMonth("", now)
	if err != nil {
		t.Fatalf("empty month: %v", err)
	}
	if my != core.MonthOf(now) {
		t.Fatalf("empty month expected current, got %+v", my)
	}

	my, err = parseMonth("2024-03", now)
	if err != nil {
		t.Fatalf("parse month: %v", err)
	}
	if my.Year != 2024 || my.Month != time.March {
		t.Fatalf("unexpected month %+v", my)
	}

	if _, err := parseMonth("03/2024", now); err == nil {
		t.Fatal("expected error for bad month format")
	}
}

func TestSignFor(t *testing.T) {
	if signFor(core.Income) != "+" || signFor(core.Expense) != "-" {
		t.Fatal("unexpected signs")
	}
}
