// Package engine computes amortization schedules for fixed-rate loans and
// compares accelerated payoff scenarios (recurring extra payments, biweekly
// cadence, one-time payments) against the baseline payoff.
//
// Every function in this package is a pure computation over its inputs:
// no I/O, no shared state, and the same inputs always yield the same
// outputs. Callers are responsible for validating inputs before invoking
// the engine (principal > 0, rate >= 0, term > 0).
package engine

import (
	"time"

	"mortgage-whatif/pkg/constants"
	"mortgage-whatif/pkg/datetime"
)

// PaymentFrequency selects how loan payments are scheduled.
type PaymentFrequency string

const (
	// Monthly is one payment per month, the default.
	Monthly PaymentFrequency = constants.FrequencyMonthly

	// Biweekly is 26 payments per year. The simulation still advances in
	// monthly steps using a monthly-equivalent amount rather than 26
	// discrete biweekly events.
	Biweekly PaymentFrequency = constants.FrequencyBiweekly
)

// OneTimePayment is an extra principal payment applied at one specific month.
type OneTimePayment struct {
	Month  int
	Amount float64
}

// LoanParameters holds the inputs for one calculation.
type LoanParameters struct {
	Principal         float64
	AnnualRatePercent float64
	TermYears         float64
	// ExtraPayment is a recurring extra amount added to every period's payment.
	ExtraPayment float64
	Frequency    PaymentFrequency
	// OneTimePayments are unique by month; when the slice carries duplicates
	// the later entry wins. Months beyond the loan term are never matched
	// during iteration and are silently ignored.
	OneTimePayments []OneTimePayment
}

// TermMonths returns the total number of monthly periods in the loan term.
func (p LoanParameters) TermMonths() int {
	return int(p.TermYears * constants.MonthsPerYear)
}

// Accelerated reports whether any payoff-acceleration input is active.
func (p LoanParameters) Accelerated() bool {
	return p.ExtraPayment > 0 || p.Frequency == Biweekly || len(p.OneTimePayments) > 0
}

// monthlyRate returns the periodic interest rate for monthly steps.
func (p LoanParameters) monthlyRate() float64 {
	return p.AnnualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// oneTimeAmounts indexes the one-time payments by month. Later duplicates
// overwrite earlier ones.
func (p LoanParameters) oneTimeAmounts() map[int]float64 {
	if len(p.OneTimePayments) == 0 {
		return nil
	}
	amounts := make(map[int]float64, len(p.OneTimePayments))
	for _, payment := range p.OneTimePayments {
		amounts[payment.Month] = payment.Amount
	}
	return amounts
}

// LedgerEntry holds the values for one simulated period.
type LedgerEntry struct {
	Month            int
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
	// OneTimePayment is true iff a one-time payment existed for this month.
	OneTimePayment bool
}

// Result aggregates everything derived from one parameter set. TotalPaid and
// TotalInterest always describe the baseline schedule (level monthly payments
// for the full term, no extra payments); the ledger reflects the requested
// parameters and may terminate before the nominal term. BiweeklyPayment,
// InterestSaved, MonthsSaved, and PayoffDate are populated only when
// acceleration is active.
type Result struct {
	MonthlyPayment  float64
	BiweeklyPayment float64
	TotalPaid       float64
	TotalInterest   float64
	Ledger          []LedgerEntry
	Accelerated     bool
	InterestSaved   float64
	MonthsSaved     int
	PayoffDate      string
}

// Calculate runs the schedule generator and, when acceleration is active,
// the payoff simulator, using the current time for the payoff projection.
func Calculate(params LoanParameters) Result {
	return CalculateAt(params, time.Now())
}

// CalculateAt is Calculate with an injectable start time for the payoff
// date projection.
func CalculateAt(params LoanParameters, now time.Time) Result {
	termMonths := params.TermMonths()
	monthlyPayment := MonthlyPayment(params.Principal, params.AnnualRatePercent, termMonths)

	result := Result{
		MonthlyPayment: monthlyPayment,
		TotalPaid:      monthlyPayment * float64(termMonths),
		Ledger:         GenerateSchedule(params),
	}
	result.TotalInterest = result.TotalPaid - params.Principal

	if params.Frequency == Biweekly {
		result.BiweeklyPayment = monthlyPayment / 2
	}

	if !params.Accelerated() {
		return result
	}

	payoff := SimulatePayoff(params)
	result.Accelerated = true
	result.InterestSaved = result.TotalInterest - payoff.TotalInterest
	result.MonthsSaved = termMonths - payoff.Months
	result.PayoffDate = datetime.ProjectPayoffDate(now, payoff.Months)
	return result
}
