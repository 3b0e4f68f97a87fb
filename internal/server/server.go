// Package server exposes the amortization engine over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mortgage-whatif/internal/config"
	"mortgage-whatif/internal/engine"
	"mortgage-whatif/internal/metrics"
	"mortgage-whatif/pkg/adapters"
	"mortgage-whatif/pkg/constants"
	"mortgage-whatif/pkg/output"
	"mortgage-whatif/pkg/validation"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculation API endpoint (JSON body)
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Calculation API endpoint (YAML config upload, supports scenarios)
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Liveness endpoint
	mux.HandleFunc("/healthz", h.handleHealth)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

type calculateRequest struct {
	Principal        float64                 `json:"principal"`
	InterestRate     float64                 `json:"interestRate"`
	TermYears        float64                 `json:"termYears"`
	ExtraPayment     float64                 `json:"extraPayment"`
	PaymentFrequency string                  `json:"paymentFrequency"`
	OneTimePayments  []oneTimePaymentPayload `json:"oneTimePayments"`
}

type oneTimePaymentPayload struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

type calculationResponse struct {
	MonthlyPayment  float64     `json:"monthlyPayment"`
	BiweeklyPayment *float64    `json:"biweeklyPayment,omitempty"`
	TotalPaid       float64     `json:"totalPaid"`
	TotalInterest   float64     `json:"totalInterest"`
	Ledger          []ledgerRow `json:"ledger"`
	InterestSaved   *float64    `json:"interestSaved,omitempty"`
	MonthsSaved     *int        `json:"monthsSaved,omitempty"`
	PayoffDate      string      `json:"payoffDate,omitempty"`
	Duration        string      `json:"duration,omitempty"`
}

type ledgerRow struct {
	Month          int     `json:"month"`
	Payment        float64 `json:"payment"`
	Principal      float64 `json:"principal"`
	Interest       float64 `json:"interest"`
	Balance        float64 `json:"balance"`
	OneTimePayment bool    `json:"oneTimePayment,omitempty"`
}

type scheduleResponse struct {
	Scenarios []string           `json:"scenarios"`
	Results   []namedCalculation `json:"results"`
	CSV       string             `json:"csv"`
	Warnings  []string           `json:"warnings,omitempty"`
	Duration  string             `json:"duration"`
}

type namedCalculation struct {
	Name string `json:"name"`
	calculationResponse
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "/api/calculate")
		return
	}

	loan := config.Loan{
		Principal:        req.Principal,
		InterestRate:     req.InterestRate,
		TermYears:        req.TermYears,
		ExtraPayment:     req.ExtraPayment,
		PaymentFrequency: req.PaymentFrequency,
	}
	for _, payment := range req.OneTimePayments {
		if err := validation.ValidateOneTimePayment(payment.Month, payment.Amount); err != nil {
			metrics.InputErrors.WithLabelValues("/api/calculate").Inc()
			h.respondError(w, http.StatusBadRequest, err.Error(), "/api/calculate")
			return
		}
		loan.OneTimePayments = append(loan.OneTimePayments, config.OneTimePayment{
			Month:  payment.Month,
			Amount: payment.Amount,
		})
	}

	if err := loan.Normalize(); err != nil {
		metrics.InputErrors.WithLabelValues("/api/calculate").Inc()
		h.respondError(w, http.StatusBadRequest, err.Error(), "/api/calculate")
		return
	}
	if err := loan.Validate(); err != nil {
		metrics.InputErrors.WithLabelValues("/api/calculate").Inc()
		h.respondError(w, http.StatusBadRequest, err.Error(), "/api/calculate")
		return
	}

	params := adapters.LoanToParameters(loan)
	result := engine.Calculate(params)
	metrics.Calculations.WithLabelValues(string(params.Frequency), strconv.FormatBool(result.Accelerated)).Inc()

	response := toCalculationResponse(result)
	response.Duration = time.Since(start).String()

	h.logger.Debug("calculation served",
		zap.String("op", "server.handleCalculate"),
		zap.Float64("principal", loan.Principal),
		zap.Int("ledger_months", len(result.Ledger)),
	)

	metrics.Requests.WithLabelValues("/api/calculate", "ok").Inc()
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "/api/schedule")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "/api/schedule")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", "/api/schedule")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleSchedule"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "/api/schedule")
		return
	}

	conf, err := config.ParseConfiguration(buf.Bytes())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "/api/schedule")
		return
	}
	if err := conf.Loan.Validate(); err != nil {
		metrics.InputErrors.WithLabelValues("/api/schedule").Inc()
		h.respondError(w, http.StatusBadRequest, err.Error(), "/api/schedule")
		return
	}

	warnings := conf.ValidateConfiguration()

	reports := []output.Report{
		{Name: baselineName(conf.Loan), Result: engine.Calculate(adapters.LoanToParameters(conf.Loan))},
	}
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			h.logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "server.handleSchedule"),
			)
			continue
		}
		params := adapters.ScenarioToParameters(conf.Loan, scenario)
		result := engine.Calculate(params)
		metrics.Calculations.WithLabelValues(string(params.Frequency), strconv.FormatBool(result.Accelerated)).Inc()
		reports = append(reports, output.Report{Name: scenario.Name, Result: result})
	}

	response := scheduleResponse{
		CSV:      output.CsvString(reports),
		Warnings: warnings,
		Duration: time.Since(start).String(),
	}
	for _, report := range reports {
		response.Scenarios = append(response.Scenarios, report.Name)
		response.Results = append(response.Results, namedCalculation{
			Name:                report.Name,
			calculationResponse: toCalculationResponse(report.Result),
		})
	}

	metrics.Requests.WithLabelValues("/api/schedule", "ok").Inc()
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toCalculationResponse(result engine.Result) calculationResponse {
	response := calculationResponse{
		MonthlyPayment: result.MonthlyPayment,
		TotalPaid:      result.TotalPaid,
		TotalInterest:  result.TotalInterest,
		Ledger:         make([]ledgerRow, 0, len(result.Ledger)),
	}
	for _, entry := range result.Ledger {
		response.Ledger = append(response.Ledger, ledgerRow{
			Month:          entry.Month,
			Payment:        entry.Payment,
			Principal:      entry.Principal,
			Interest:       entry.Interest,
			Balance:        entry.RemainingBalance,
			OneTimePayment: entry.OneTimePayment,
		})
	}

	if result.BiweeklyPayment > 0 {
		biweekly := result.BiweeklyPayment
		response.BiweeklyPayment = &biweekly
	}
	if result.Accelerated {
		interestSaved := result.InterestSaved
		monthsSaved := result.MonthsSaved
		response.InterestSaved = &interestSaved
		response.MonthsSaved = &monthsSaved
		response.PayoffDate = result.PayoffDate
	}
	return response
}

func baselineName(loan config.Loan) string {
	if loan.Name != "" {
		return loan.Name
	}
	return "loan"
}

func (h *handler) respondError(w http.ResponseWriter, status int, message, endpoint string) {
	metrics.Requests.WithLabelValues(endpoint, "error").Inc()
	h.logger.Debug(message,
		zap.String("op", "server.respondError"),
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
