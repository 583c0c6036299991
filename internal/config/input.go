package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxYears caps the projection horizon accepted from collectors.
const MaxYears = 100

// ErrInvalidInput marks range-validation failures.
var ErrInvalidInput = errors.New("invalid input")

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateCurrency(&config.Currency); err != nil {
		return fmt.Errorf("currency validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d validation failed: scenario name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		in, err := calculation.FromRaw(scenario.Input)
		if err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if err := ip.ValidateInput(in); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// ValidateInput applies the range checks the engine leaves to its callers.
func (ip *InputParser) ValidateInput(in domain.ProjectionInput) error {
	for _, v := range []float64{in.InitialInvestment, in.MonthlyInvestment, in.AnnualStepUp, in.InterestRate, in.InflationRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: amounts and rates must be finite numbers", ErrInvalidInput)
		}
	}
	if in.InitialInvestment < 0 {
		return fmt.Errorf("%w: initial investment cannot be negative", ErrInvalidInput)
	}
	if in.MonthlyInvestment < 0 {
		return fmt.Errorf("%w: monthly investment cannot be negative", ErrInvalidInput)
	}
	if in.AnnualStepUp < 0 {
		return fmt.Errorf("%w: annual step-up cannot be negative", ErrInvalidInput)
	}
	if in.Years <= 0 || in.Years > MaxYears {
		return fmt.Errorf("%w: years must be between 1 and %d", ErrInvalidInput, MaxYears)
	}
	if in.InterestRate <= -100 {
		return fmt.Errorf("%w: interest rate must be greater than -100%%", ErrInvalidInput)
	}
	if in.InflationRate <= -100 || in.InflationRate >= 100 {
		return fmt.Errorf("%w: inflation rate must be between -100%% and 100%%", ErrInvalidInput)
	}
	return nil
}

func (ip *InputParser) validateCurrency(c *domain.CurrencyOptions) error {
	switch c.Grouping {
	case "", domain.GroupingWestern, domain.GroupingIndian:
	default:
		return fmt.Errorf("grouping must be %q or %q", domain.GroupingWestern, domain.GroupingIndian)
	}
	if c.DecimalScale < 0 || c.DecimalScale > 4 {
		return fmt.Errorf("decimal scale must be between 0 and 4")
	}
	return nil
}

// DefaultInput returns the calculator's starting values.
func DefaultInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		InitialInvestment: 10000,
		MonthlyInvestment: 5000,
		AnnualStepUp:      5,
		Years:             5,
		InterestRate:      7,
		InflationRate:     4.5,
		CompoundFrequency: domain.CompoundYearly,
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := calculation.ToRaw(DefaultInput())

	noStepUp := base
	noStepUp.AnnualStepUp = decimal.Zero

	longHorizon := base
	longHorizon.Years = decimal.NewFromInt(20)
	longHorizon.AnnualStepUp = decimal.NewFromInt(10)
	longHorizon.InterestRate = decimal.NewFromInt(12)
	longHorizon.InflationRate = decimal.NewFromInt(6)
	longHorizon.CompoundFrequency = string(domain.CompoundMonthly)

	return &domain.Configuration{
		Currency: domain.DefaultCurrency(),
		Scenarios: []domain.Scenario{
			{Name: "Default Plan", Input: base},
			{Name: "Flat Contributions", Input: noStepUp},
			{Name: "Long Horizon Equity", Input: longHorizon},
		},
	}
}
