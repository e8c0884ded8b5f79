package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/pkg/dateutil"
)

// InputParser handles parsing of filing configuration files
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

// Parse decodes and validates configuration bytes
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

// ValidateConfiguration validates the loaded configuration. It normalizes the
// tax year to Gregorian and fills in the default variant in place.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Filings) == 0 {
		return fmt.Errorf("no filings provided")
	}

	if config.TaxYear < 0 {
		return fmt.Errorf("tax year cannot be negative")
	}
	config.TaxYear = dateutil.NormalizeTaxYear(config.TaxYear)

	for i := range config.Filings {
		if err := ip.validateFiling(&config.Filings[i]); err != nil {
			return fmt.Errorf("filing %d validation failed: %w", i, err)
		}
	}

	dupes := lo.FindDuplicatesBy(config.Filings, func(f domain.Filing) string {
		return strings.ToLower(f.Name)
	})
	if len(dupes) > 0 {
		return fmt.Errorf("duplicate filing name %q", dupes[0].Name)
	}

	return nil
}

// validateFiling validates a single filing
func (ip *InputParser) validateFiling(filing *domain.Filing) error {
	filing.Name = strings.TrimSpace(filing.Name)
	if filing.Name == "" {
		return fmt.Errorf("filing name is required")
	}

	variant, err := domain.ParseVariant(string(filing.Variant))
	if err != nil {
		return err
	}
	filing.Variant = variant

	return filing.Input.Validate()
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		TaxYear: 2024,
		Filings: []domain.Filing{
			{
				Name:    "Salary only",
				Variant: domain.VariantSimple,
				Input: domain.TaxInput{
					Salary:       decimal.NewFromInt(600000),
					AutoExpenses: true,
				},
			},
			{
				Name:    "Family with withholding",
				Variant: domain.VariantExtended,
				Input: domain.TaxInput{
					SalaryMonthly:  decimal.NewFromInt(50000),
					Expenses:       decimal.NewFromInt(100000),
					HasSpouse:      true,
					ChildCount:     1,
					SocialSecurity: decimal.NewFromInt(9000),
					WithholdingTax: decimal.NewFromInt(25000),
				},
			},
			{
				Name:    "Family with donations",
				Variant: domain.VariantExtended,
				Input: domain.TaxInput{
					SalaryMonthly:   decimal.NewFromInt(50000),
					Bonus:           decimal.NewFromInt(100000),
					AutoExpenses:    true,
					HasSpouse:       true,
					ChildCount:      1,
					HasMother:       true,
					SocialSecurity:  decimal.NewFromInt(9000),
					ProvidentFund:   decimal.NewFromInt(30000),
					DonationGeneral: decimal.NewFromInt(20000),
					DonationSpecial: decimal.NewFromInt(10000),
					WithholdingTax:  decimal.NewFromInt(25000),
				},
			},
		},
	}
}
