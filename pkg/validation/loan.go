// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"mortgage-whatif/pkg/constants"
)

// ValidateLoan checks the numeric loan inputs that must hold before the
// amortization engine is invoked. The engine itself performs no validation
// and produces undefined results on bad inputs, so every collector (CLI,
// HTTP API) runs this first.
func ValidateLoan(principal, annualRatePercent, termYears, extraPayment float64) error {
	if principal <= 0 {
		return fmt.Errorf("loan principal must be positive, got %.2f", principal)
	}
	if annualRatePercent < 0 {
		return fmt.Errorf("interest rate must be non-negative, got %.3f", annualRatePercent)
	}
	if termYears <= 0 {
		return fmt.Errorf("loan term must be positive, got %.2f years", termYears)
	}
	if extraPayment < 0 {
		return fmt.Errorf("extra payment must be non-negative, got %.2f", extraPayment)
	}
	return nil
}

// ValidateFrequency checks that a payment frequency is one of the supported
// values.
func ValidateFrequency(frequency string) error {
	if frequency != constants.FrequencyMonthly && frequency != constants.FrequencyBiweekly {
		return fmt.Errorf("expected payment frequency of %s or %s, got %s",
			constants.FrequencyMonthly, constants.FrequencyBiweekly, frequency)
	}
	return nil
}

// ValidateOneTimePayment checks a single one-time payment entry.
func ValidateOneTimePayment(month int, amount float64) error {
	if month < 1 {
		return fmt.Errorf("one-time payment month must be positive, got %d", month)
	}
	if amount <= 0 {
		return fmt.Errorf("one-time payment amount must be positive, got %.2f", amount)
	}
	return nil
}

// OneTimePaymentWarnings reports one-time payments scheduled past the end of
// the loan term. Those are never matched during iteration and are silently
// ignored by the engine; surfacing them as warnings is deliberate leniency
// rather than an error.
func OneTimePaymentWarnings(name string, months []int, termMonths int) []string {
	var warnings []string
	for _, month := range months {
		if month > termMonths {
			warnings = append(warnings, fmt.Sprintf(
				"%s: one-time payment at month %d is past the %d-month term and will never apply",
				name, month, termMonths))
		}
	}
	return warnings
}
