// Package output provides utilities for formatting and displaying
// amortization results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mortgage-whatif/internal/engine"
)

// Report pairs a calculation result with the scenario name it belongs to.
type Report struct {
	Name   string
	Result engine.Result
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(reports []Report) {
	p := message.NewPrinter(language.English)
	for _, report := range reports {
		result := report.Result
		fmt.Printf("--- Results for scenario %s ---\n", report.Name)
		_, _ = p.Printf("Monthly payment:  $%.2f\n", result.MonthlyPayment)
		if result.BiweeklyPayment > 0 {
			_, _ = p.Printf("Biweekly payment: $%.2f\n", result.BiweeklyPayment)
		}
		_, _ = p.Printf("Total paid:       $%.2f\n", result.TotalPaid)
		_, _ = p.Printf("Total interest:   $%.2f\n", result.TotalInterest)
		if result.Accelerated {
			_, _ = p.Printf("Interest saved:   $%.2f\n", result.InterestSaved)
			_, _ = p.Printf("Months saved:     %d\n", result.MonthsSaved)
			fmt.Printf("Payoff date:      %s\n", result.PayoffDate)
		}
		fmt.Printf("Month | Payment       | Principal     | Interest      | Balance       | Notes\n")
		fmt.Printf("_____ | _____________ | _____________ | _____________ | _____________ | _____\n")
		for _, entry := range result.Ledger {
			_, _ = p.Printf("%5d | $%.2f | $%.2f | $%.2f | $%.2f | %s\n",
				entry.Month, entry.Payment, entry.Principal, entry.Interest,
				entry.RemainingBalance, entryNote(entry))
		}
		if len(reports) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(reports []Report) {
	fmt.Print(CsvString(reports))
}

// CsvString renders the ledgers of all reports in long CSV form, one row per
// scenario and month. Ledgers may have different lengths since accelerated
// scenarios terminate early.
func CsvString(reports []Report) string {
	var builder strings.Builder
	builder.WriteString(`"scenario","month","payment","principal","interest","balance","one_time_payment"` + "\n")
	for _, report := range reports {
		for _, entry := range report.Result.Ledger {
			builder.WriteString(fmt.Sprintf(`"%s","%d","%.2f","%.2f","%.2f","%.2f","%t"`,
				report.Name, entry.Month, entry.Payment, entry.Principal,
				entry.Interest, entry.RemainingBalance, entry.OneTimePayment))
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

func entryNote(entry engine.LedgerEntry) string {
	if entry.OneTimePayment {
		return "one-time payment"
	}
	return ""
}
