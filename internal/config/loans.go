// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"sort"

	"mortgage-whatif/pkg/constants"
	"mortgage-whatif/pkg/validation"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Name             string           `yaml:"name,omitempty"`
	Principal        float64          `yaml:"principal"`
	InterestRate     float64          `yaml:"interestRate"` // nominal annual rate as a percentage
	TermYears        float64          `yaml:"termYears"`
	ExtraPayment     float64          `yaml:"extraPayment,omitempty"`
	PaymentFrequency string           `yaml:"paymentFrequency,omitempty"`
	OneTimePayments  []OneTimePayment `yaml:"oneTimePayments,omitempty"`
}

// OneTimePayment is an extra principal payment at one specific month.
type OneTimePayment struct {
	Month  int     `yaml:"month"`
	Amount float64 `yaml:"amount"`
}

// TermMonths returns the loan term in monthly periods.
func (loan *Loan) TermMonths() int {
	return int(loan.TermYears * constants.MonthsPerYear)
}

// Normalize applies defaults and canonicalizes the one-time payment list.
func (loan *Loan) Normalize() error {
	if loan.PaymentFrequency == "" {
		loan.PaymentFrequency = constants.FrequencyMonthly
	}
	if err := validation.ValidateFrequency(loan.PaymentFrequency); err != nil {
		return err
	}
	loan.OneTimePayments = NormalizeOneTimePayments(loan.OneTimePayments)
	return nil
}

// Validate checks the loan inputs the engine itself never re-validates.
func (loan *Loan) Validate() error {
	return validation.ValidateLoan(loan.Principal, loan.InterestRate, loan.TermYears, loan.ExtraPayment)
}

// NormalizeOneTimePayments collapses duplicate months (the later submission
// wins) and orders the result by month ascending. Ordering only matters for
// display and iteration; the engine looks payments up by exact month.
func NormalizeOneTimePayments(payments []OneTimePayment) []OneTimePayment {
	if len(payments) == 0 {
		return nil
	}

	byMonth := make(map[int]float64, len(payments))
	for _, payment := range payments {
		byMonth[payment.Month] = payment.Amount
	}

	normalized := make([]OneTimePayment, 0, len(byMonth))
	for month, amount := range byMonth {
		normalized = append(normalized, OneTimePayment{Month: month, Amount: amount})
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Month < normalized[j].Month
	})
	return normalized
}
