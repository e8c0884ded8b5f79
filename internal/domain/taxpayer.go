package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Variant selects which stages of the calculation pipeline run.
type Variant string

const (
	// VariantSimple takes an annual salary and stops at the tax payable.
	VariantSimple Variant = "simple"
	// VariantExtended takes a monthly salary plus bonus, applies donation
	// credits and reconciles the tax against withholding.
	VariantExtended Variant = "extended"
)

// ParseVariant resolves a user supplied variant name. An empty name means simple.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(VariantSimple):
		return VariantSimple, nil
	case string(VariantExtended):
		return VariantExtended, nil
	default:
		return "", &InputError{Field: "variant", Reason: fmt.Sprintf("unknown variant %q", s)}
	}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantSimple || v == VariantExtended
}

// TaxInput holds the figures a taxpayer enters on the form.
// Salary is read by the simple variant, SalaryMonthly and Bonus by the extended one.
type TaxInput struct {
	Salary        decimal.Decimal `yaml:"salary,omitempty" json:"salary"`
	SalaryMonthly decimal.Decimal `yaml:"salary_monthly,omitempty" json:"salaryMonthly"`
	Bonus         decimal.Decimal `yaml:"bonus,omitempty" json:"bonus"`
	OtherIncome   decimal.Decimal `yaml:"other_income,omitempty" json:"otherIncome"`

	// Expenses is ignored when AutoExpenses is set; the standard allowance is used instead.
	Expenses     decimal.Decimal `yaml:"expenses,omitempty" json:"expenses"`
	AutoExpenses bool            `yaml:"auto_expenses,omitempty" json:"autoExpenses"`

	HasSpouse  bool `yaml:"has_spouse,omitempty" json:"hasSpouse"`
	ChildCount int  `yaml:"child_count,omitempty" json:"childCount"`
	HasFather  bool `yaml:"has_father,omitempty" json:"hasFather"`
	HasMother  bool `yaml:"has_mother,omitempty" json:"hasMother"`

	SocialSecurity decimal.Decimal `yaml:"social_security,omitempty" json:"socialSecurity"`
	LifeInsurance  decimal.Decimal `yaml:"life_insurance,omitempty" json:"lifeInsurance"`
	ProvidentFund  decimal.Decimal `yaml:"provident_fund,omitempty" json:"providentFund"`
	OtherDeduction decimal.Decimal `yaml:"other_deduction,omitempty" json:"otherDeduction"`

	DonationGeneral decimal.Decimal `yaml:"donation_general,omitempty" json:"donationGeneral"`
	// DonationSpecial is credited at twice its amount before the donation cap applies.
	DonationSpecial decimal.Decimal `yaml:"donation_special,omitempty" json:"donationSpecial"`

	WithholdingTax decimal.Decimal `yaml:"withholding_tax,omitempty" json:"withholdingTax"`
}

// Validate rejects negative amounts and a negative child count.
func (in TaxInput) Validate() error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"salary", in.Salary},
		{"salary_monthly", in.SalaryMonthly},
		{"bonus", in.Bonus},
		{"other_income", in.OtherIncome},
		{"expenses", in.Expenses},
		{"social_security", in.SocialSecurity},
		{"life_insurance", in.LifeInsurance},
		{"provident_fund", in.ProvidentFund},
		{"other_deduction", in.OtherDeduction},
		{"donation_general", in.DonationGeneral},
		{"donation_special", in.DonationSpecial},
		{"withholding_tax", in.WithholdingTax},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return &InputError{Field: a.field, Reason: fmt.Sprintf("must not be negative, got %s", a.value.String())}
		}
	}
	if in.ChildCount < 0 {
		return &InputError{Field: "child_count", Reason: fmt.Sprintf("must not be negative, got %d", in.ChildCount)}
	}
	return nil
}

// Filing is one named what-if calculation for a household.
type Filing struct {
	Name    string   `yaml:"name" json:"name"`
	Variant Variant  `yaml:"variant" json:"variant"`
	Input   TaxInput `yaml:"input" json:"input"`
}

// Configuration is the content of a filing file.
// TaxYear is a Gregorian year once loaded; zero means the current year.
type Configuration struct {
	TaxYear int      `yaml:"tax_year,omitempty" json:"tax_year,omitempty"`
	Filings []Filing `yaml:"filings" json:"filings"`
}
