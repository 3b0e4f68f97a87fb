// Package testutil provides common utility functions for testing.
package testutil

import (
	"mortgage-whatif/internal/engine"
)

// FindEntry finds a ledger entry by month.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(ledger []engine.LedgerEntry, month int) *engine.LedgerEntry {
	for i := range ledger {
		if ledger[i].Month == month {
			return &ledger[i]
		}
	}
	return nil
}

// SumPayments totals the recorded payments across a ledger.
func SumPayments(ledger []engine.LedgerEntry) float64 {
	var total float64
	for _, entry := range ledger {
		total += entry.Payment
	}
	return total
}
