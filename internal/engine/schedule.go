package engine

import (
	"mortgage-whatif/pkg/mathutil"
)

// GenerateSchedule produces the full per-month ledger for one parameter set.
// Iteration stops once the balance reaches zero, so the ledger may be shorter
// than the nominal term when extra payments are in play.
//
// The recorded Payment is the total cash applied for the period, not the
// post-clamp principal plus interest. On the final period this can exceed
// what was actually needed to reach a zero balance; clamping affects only
// the principal and balance accounting.
func GenerateSchedule(params LoanParameters) []LedgerEntry {
	termMonths := params.TermMonths()
	monthlyRate := params.monthlyRate()
	basePayment := periodicPayment(MonthlyPayment(params.Principal, params.AnnualRatePercent, termMonths), params.Frequency)
	oneTime := params.oneTimeAmounts()

	ledger := make([]LedgerEntry, 0, termMonths)
	balance := params.Principal

	for month := 1; balance > 0 && month <= termMonths; month++ {
		payment := basePayment + params.ExtraPayment
		extraAmount, hadOneTime := oneTime[month]
		if hadOneTime {
			payment += extraAmount
		}

		interest := balance * monthlyRate
		principal := payment - interest

		if principal >= balance {
			// Final payment; only principal and balance are clamped.
			principal = balance
			balance = 0
		} else {
			balance -= principal
			if mathutil.IsPaidOff(balance, params.Principal) {
				balance = 0
			}
		}

		ledger = append(ledger, LedgerEntry{
			Month:            month,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
			OneTimePayment:   hadOneTime,
		})
	}

	return ledger
}
