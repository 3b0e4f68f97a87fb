package engine

import (
	"reflect"
	"testing"
	"time"

	"mortgage-whatif/pkg/datetime"
	"mortgage-whatif/pkg/mathutil"
)

func TestCalculateBaseline(t *testing.T) {
	result := Calculate(baselineParams())

	if !mathutil.WithinTolerance(result.MonthlyPayment, 1896.20, 0.01) {
		t.Errorf("MonthlyPayment = %.2f, expected 1896.20", result.MonthlyPayment)
	}
	if len(result.Ledger) != 360 {
		t.Errorf("ledger length = %d, expected 360", len(result.Ledger))
	}
	if !mathutil.WithinTolerance(result.TotalPaid, result.MonthlyPayment*360, 0.01) {
		t.Errorf("TotalPaid = %.2f, expected %.2f", result.TotalPaid, result.MonthlyPayment*360)
	}
	if !mathutil.WithinTolerance(result.TotalInterest, result.TotalPaid-300000, 0.01) {
		t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, result.TotalPaid-300000)
	}

	// No acceleration requested, so the comparison fields stay absent.
	if result.Accelerated {
		t.Error("baseline result should not be marked accelerated")
	}
	if result.BiweeklyPayment != 0 || result.InterestSaved != 0 || result.MonthsSaved != 0 || result.PayoffDate != "" {
		t.Errorf("baseline result carries acceleration fields: %+v", result)
	}
}

func TestCalculateWithRecurringExtra(t *testing.T) {
	params := baselineParams()
	params.ExtraPayment = 200

	now := datetime.MustParseTime(datetime.DateTimeLayout, "2025-06")
	result := CalculateAt(params, now)

	if !result.Accelerated {
		t.Fatal("result should be marked accelerated")
	}
	if result.MonthsSaved != 360-277 {
		t.Errorf("MonthsSaved = %d, expected %d", result.MonthsSaved, 360-277)
	}
	if result.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %.2f, expected > 0", result.InterestSaved)
	}
	if len(result.Ledger) != 277 {
		t.Errorf("ledger length = %d, expected payoff month count 277", len(result.Ledger))
	}

	// 277 months from 2025-06: 23 years and 1 month.
	if result.PayoffDate != "2048-07" {
		t.Errorf("PayoffDate = %s, expected 2048-07", result.PayoffDate)
	}
}

func TestCalculateBiweekly(t *testing.T) {
	params := baselineParams()
	params.Frequency = Biweekly

	result := CalculateAt(params, datetime.MustParseTime(datetime.DateTimeLayout, "2025-01"))

	if !result.Accelerated {
		t.Fatal("biweekly cadence alone should activate the comparison")
	}
	if !mathutil.WithinTolerance(result.BiweeklyPayment, result.MonthlyPayment/2, 0.000001) {
		t.Errorf("BiweeklyPayment = %.2f, expected %.2f", result.BiweeklyPayment, result.MonthlyPayment/2)
	}
	if result.MonthsSaved <= 0 || result.InterestSaved <= 0 {
		t.Errorf("expected positive savings, got months %d interest %.2f", result.MonthsSaved, result.InterestSaved)
	}
}

func TestCalculateDeterminism(t *testing.T) {
	params := baselineParams()
	params.ExtraPayment = 125.50
	params.OneTimePayments = []OneTimePayment{{Month: 18, Amount: 7500}}
	now := datetime.MustParseTime(datetime.DateTimeLayout, "2025-06")

	first := CalculateAt(params, now)
	second := CalculateAt(params, now)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs should produce bit-identical results")
	}
}

func TestCalculateConcurrentUse(t *testing.T) {
	params := baselineParams()
	params.ExtraPayment = 200
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	expected := CalculateAt(params, now)

	done := make(chan Result, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- CalculateAt(params, now)
		}()
	}
	for i := 0; i < 8; i++ {
		if result := <-done; !reflect.DeepEqual(result, expected) {
			t.Fatal("concurrent calls with identical inputs diverged")
		}
	}
}

func TestOneTimePaymentLaterSubmissionWins(t *testing.T) {
	params := baselineParams()
	params.OneTimePayments = []OneTimePayment{
		{Month: 12, Amount: 5000},
		{Month: 12, Amount: 8000},
	}

	ledger := GenerateSchedule(params)

	flagged := 0
	for _, entry := range ledger {
		if entry.OneTimePayment {
			flagged++
		}
	}
	if flagged != 1 {
		t.Fatalf("expected exactly one flagged entry, got %d", flagged)
	}

	month12 := ledger[11]
	if !month12.OneTimePayment {
		t.Fatal("month 12 should carry the one-time payment")
	}
	base := ledger[10].Payment
	if !mathutil.WithinTolerance(month12.Payment, base+8000, 0.000001) {
		t.Errorf("month 12 payment = %.2f, expected base %.2f plus replacement amount 8000", month12.Payment, base)
	}
}

func TestLoanParametersAccelerated(t *testing.T) {
	tests := []struct {
		name     string
		params   LoanParameters
		expected bool
	}{
		{"Plain monthly", LoanParameters{Principal: 1000, AnnualRatePercent: 5, TermYears: 1, Frequency: Monthly}, false},
		{"Recurring extra", LoanParameters{Principal: 1000, AnnualRatePercent: 5, TermYears: 1, ExtraPayment: 10, Frequency: Monthly}, true},
		{"Biweekly", LoanParameters{Principal: 1000, AnnualRatePercent: 5, TermYears: 1, Frequency: Biweekly}, true},
		{"One-time only", LoanParameters{Principal: 1000, AnnualRatePercent: 5, TermYears: 1, Frequency: Monthly,
			OneTimePayments: []OneTimePayment{{Month: 6, Amount: 100}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.params.Accelerated(); result != tt.expected {
				t.Errorf("Accelerated() = %v, expected %v", result, tt.expected)
			}
		})
	}
}
