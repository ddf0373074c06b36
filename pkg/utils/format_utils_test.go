package utils

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{950, "Rp 950"},
		{1000, "Rp 1.000"},
		{1234567.8, "Rp 1.234.568"},
		{25000, "Rp 25.000"},
		{-15000, "-Rp 15.000"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Errorf("FormatCurrency(%v): expected %q, got %q", tc.amount, tc.want, got)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(1, 2026); got != "January 2026" {
		t.Errorf("expected January 2026, got %q", got)
	}
	if got := MonthLabel(12, 2025); got != "December 2025" {
		t.Errorf("expected December 2025, got %q", got)
	}
	if got := MonthLabel(0, 2025); got != "2025" {
		t.Errorf("out-of-range month should fall back to year, got %q", got)
	}
}

func TestFormatReportDate(t *testing.T) {
	ts := time.Date(2026, 3, 7, 15, 4, 5, 0, time.UTC)
	if got := FormatReportDate(ts); got != "2026-03-07" {
		t.Errorf("expected 2026-03-07, got %q", got)
	}
}
