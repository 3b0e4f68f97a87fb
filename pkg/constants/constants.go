// Package constants provides shared constants for the mortgage-whatif application.
package constants

// DateTimeLayout is the output format for projected payoff dates.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// BiweeklyPaymentsPerYear is the number of biweekly payments in a year
	BiweeklyPaymentsPerYear = 26

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ResidualBalanceTolerance is the fraction of the original principal below
	// which a remaining balance is treated as fully paid. Final payments carry
	// floating-point residue that would otherwise leave a nonzero balance on
	// the last ledger entry.
	ResidualBalanceTolerance = 1e-6
)

// Payment frequency constants
const (
	// FrequencyMonthly selects one payment per month
	FrequencyMonthly = "monthly"

	// FrequencyBiweekly selects 26 payments per year folded into monthly steps
	FrequencyBiweekly = "biweekly"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
