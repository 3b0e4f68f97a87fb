package engine

import (
	"mortgage-whatif/pkg/mathutil"
)

// PayoffSummary holds the aggregate totals for one simulated payoff.
type PayoffSummary struct {
	TotalPaid     float64
	TotalInterest float64
	Months        int
}

// SimulatePayoff computes aggregate payoff totals without materializing the
// per-month ledger. It applies the same monthly-equivalent payment and
// one-time payment lookup as GenerateSchedule so the two stay consistent.
//
// Unlike the ledger, the clamped final period accumulates only the balance
// plus interest actually owed into TotalPaid; the excess over what was owed
// is not counted as paid.
func SimulatePayoff(params LoanParameters) PayoffSummary {
	termMonths := params.TermMonths()
	monthlyRate := params.monthlyRate()
	basePayment := periodicPayment(MonthlyPayment(params.Principal, params.AnnualRatePercent, termMonths), params.Frequency)
	oneTime := params.oneTimeAmounts()

	balance := params.Principal
	var summary PayoffSummary
	month := 0

	for balance > 0 && month < termMonths {
		month++

		payment := basePayment + params.ExtraPayment
		if extraAmount, ok := oneTime[month]; ok {
			payment += extraAmount
		}

		interest := balance * monthlyRate
		principal := payment - interest
		summary.TotalInterest += interest

		if principal >= balance {
			summary.TotalPaid += balance + interest
			balance = 0
		} else {
			summary.TotalPaid += payment
			balance -= principal
			if mathutil.IsPaidOff(balance, params.Principal) {
				balance = 0
			}
		}
	}

	summary.Months = month
	return summary
}
