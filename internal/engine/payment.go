package engine

import (
	"math"

	"mortgage-whatif/pkg/constants"
)

// MonthlyPayment calculates the level monthly payment that fully amortizes
// the loan over termMonths using the standard amortization formula.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	return principal * periodicInterestRate * power / (power - 1.00)
}

// BiweeklyPayment returns the nominal biweekly payment, half the monthly
// payment.
func BiweeklyPayment(monthlyPayment float64) float64 {
	return monthlyPayment / 2
}

// periodicPayment returns the amount applied per simulated month. Biweekly
// cadence folds 26 annual payments into monthly-equivalent steps.
func periodicPayment(monthlyPayment float64, frequency PaymentFrequency) float64 {
	if frequency == Biweekly {
		return BiweeklyPayment(monthlyPayment) * constants.BiweeklyPaymentsPerYear / constants.MonthsPerYear
	}
	return monthlyPayment
}
