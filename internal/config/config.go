// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"mortgage-whatif/pkg/constants"
	"mortgage-whatif/pkg/validation"
)

// Configuration holds all configuration for mortgage-whatif.
type Configuration struct {
	Loan      Loan          `yaml:"loan"`
	Scenarios []Scenario    `yaml:"scenarios,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario overlays one set of acceleration inputs on the base loan. Each
// active scenario produces its own result compared against the shared
// baseline payoff.
type Scenario struct {
	Name             string           `yaml:"name"`
	Active           bool             `yaml:"active"`
	ExtraPayment     float64          `yaml:"extraPayment,omitempty"`
	PaymentFrequency string           `yaml:"paymentFrequency,omitempty"`
	OneTimePayments  []OneTimePayment `yaml:"oneTimePayments,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.Normalize(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

// ParseConfiguration decodes a raw YAML document into a Configuration. Used
// by the HTTP server where the config arrives as an upload rather than a
// file path.
func ParseConfiguration(data []byte) (*Configuration, error) {
	var configuration Configuration
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	if err := configuration.Normalize(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

// Normalize applies defaults and canonicalizes the loan and every scenario.
func (conf *Configuration) Normalize() error {
	if err := conf.Loan.Normalize(); err != nil {
		return err
	}

	for i := range conf.Scenarios {
		if conf.Scenarios[i].PaymentFrequency == "" {
			conf.Scenarios[i].PaymentFrequency = constants.FrequencyMonthly
		}
		if err := validation.ValidateFrequency(conf.Scenarios[i].PaymentFrequency); err != nil {
			return fmt.Errorf("scenario %q: %w", conf.Scenarios[i].Name, err)
		}
		conf.Scenarios[i].OneTimePayments = NormalizeOneTimePayments(conf.Scenarios[i].OneTimePayments)
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors (non-positive principal or term,
// negative rate) are reported by Loan.Validate instead; warnings cover the
// lenient cases that the engine silently tolerates, such as one-time
// payments scheduled past the end of the term.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	termMonths := conf.Loan.TermMonths()
	warnings = append(warnings, validation.OneTimePaymentWarnings(conf.Loan.Name, oneTimeMonths(conf.Loan.OneTimePayments), termMonths)...)

	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			continue
		}
		name := fmt.Sprintf("scenario %q", scenario.Name)
		warnings = append(warnings, validation.OneTimePaymentWarnings(name, oneTimeMonths(scenario.OneTimePayments), termMonths)...)
	}

	return warnings
}

func oneTimeMonths(payments []OneTimePayment) []int {
	months := make([]int, len(payments))
	for i, payment := range payments {
		months[i] = payment.Month
	}
	return months
}
