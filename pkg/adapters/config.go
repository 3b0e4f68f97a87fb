// Package adapters provides conversions between configuration structures and
// the amortization engine's input types.
package adapters

import (
	"mortgage-whatif/internal/config"
	"mortgage-whatif/internal/engine"
)

// LoanToParameters converts a configured loan into engine input parameters.
func LoanToParameters(loan config.Loan) engine.LoanParameters {
	return engine.LoanParameters{
		Principal:         loan.Principal,
		AnnualRatePercent: loan.InterestRate,
		TermYears:         loan.TermYears,
		ExtraPayment:      loan.ExtraPayment,
		Frequency:         engine.PaymentFrequency(loan.PaymentFrequency),
		OneTimePayments:   oneTimePayments(loan.OneTimePayments),
	}
}

// ScenarioToParameters overlays a scenario's acceleration inputs on the base
// loan: the principal, rate, and term always come from the loan while the
// extra payment, payment frequency, and one-time payments come from the
// scenario.
func ScenarioToParameters(loan config.Loan, scenario config.Scenario) engine.LoanParameters {
	return engine.LoanParameters{
		Principal:         loan.Principal,
		AnnualRatePercent: loan.InterestRate,
		TermYears:         loan.TermYears,
		ExtraPayment:      scenario.ExtraPayment,
		Frequency:         engine.PaymentFrequency(scenario.PaymentFrequency),
		OneTimePayments:   oneTimePayments(scenario.OneTimePayments),
	}
}

func oneTimePayments(payments []config.OneTimePayment) []engine.OneTimePayment {
	if payments == nil {
		return nil
	}

	var converted []engine.OneTimePayment
	for _, payment := range payments {
		converted = append(converted, engine.OneTimePayment{
			Month:  payment.Month,
			Amount: payment.Amount,
		})
	}
	return converted
}
