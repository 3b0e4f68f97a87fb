package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"mortgage-whatif/internal/engine"
)

func sampleReports() []Report {
	return []Report{
		{
			Name: "baseline",
			Result: engine.Result{
				MonthlyPayment: 1896.20,
				TotalPaid:      682633.47,
				TotalInterest:  382633.47,
				Ledger: []engine.LedgerEntry{
					{Month: 1, Payment: 1896.20, Principal: 271.20, Interest: 1625.00, RemainingBalance: 299728.80},
					{Month: 2, Payment: 1896.20, Principal: 272.67, Interest: 1623.53, RemainingBalance: 299456.13, OneTimePayment: true},
				},
			},
		},
		{
			Name: "extra principal",
			Result: engine.Result{
				MonthlyPayment: 1896.20,
				TotalPaid:      682633.47,
				TotalInterest:  382633.47,
				Accelerated:    true,
				InterestSaved:  103448.79,
				MonthsSaved:    83,
				PayoffDate:     "2048-07",
				Ledger: []engine.LedgerEntry{
					{Month: 1, Payment: 2096.20, Principal: 471.20, Interest: 1625.00, RemainingBalance: 299528.80},
				},
			},
		},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() {
		PrettyFormat(sampleReports())
	})

	if !strings.Contains(output, "--- Results for scenario baseline ---") {
		t.Error("PrettyFormat missing scenario header")
	}
	if !strings.Contains(output, "Monthly payment:  $1,896.20") {
		t.Error("PrettyFormat missing monthly payment with separators")
	}
	if !strings.Contains(output, "Total interest:   $382,633.47") {
		t.Error("PrettyFormat missing total interest")
	}
	if !strings.Contains(output, "Interest saved:   $103,448.79") {
		t.Error("PrettyFormat missing interest saved for accelerated scenario")
	}
	if !strings.Contains(output, "Payoff date:      2048-07") {
		t.Error("PrettyFormat missing payoff date")
	}
	if !strings.Contains(output, "one-time payment") {
		t.Error("PrettyFormat missing one-time payment note")
	}

	// Savings lines appear once: only the accelerated scenario reports them.
	if strings.Count(output, "Interest saved") != 1 {
		t.Error("baseline scenario should not report savings")
	}
}

func TestCsvString(t *testing.T) {
	csv := CsvString(sampleReports())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	// Header plus two baseline rows plus one accelerated row.
	if len(lines) != 4 {
		t.Fatalf("expected 4 CSV lines, got %d", len(lines))
	}
	if lines[0] != `"scenario","month","payment","principal","interest","balance","one_time_payment"` {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"baseline","1"`) {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"true"`) {
		t.Errorf("one-time payment flag missing from row: %s", lines[2])
	}
	if !strings.HasPrefix(lines[3], `"extra principal","1"`) {
		t.Errorf("unexpected accelerated row: %s", lines[3])
	}
}

func TestCsvFormatWritesToStdout(t *testing.T) {
	output := captureStdout(t, func() {
		CsvFormat(sampleReports())
	})
	if output != CsvString(sampleReports()) {
		t.Error("CsvFormat output should match CsvString")
	}
}
