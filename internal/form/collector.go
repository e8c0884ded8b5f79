// Package form turns raw form submissions into calculator input.
//
// Every amount is sanitized with parse-or-zero: thousands separators are
// stripped and anything that does not parse to a finite number becomes 0.
// Checkboxes and counters follow the same lenient rules.
package form

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
	money "github.com/thaitax/pit-calculator/pkg/decimal"
)

// Field names as submitted by the calculator form.
const (
	FieldSalary          = "salary"
	FieldSalaryMonthly   = "salaryMonthly"
	FieldBonus           = "bonus"
	FieldOtherIncome     = "otherIncome"
	FieldExpenses        = "expenses"
	FieldAutoExpenses    = "autoExpenses"
	FieldSpouse          = "spouseCheck"
	FieldChildCount      = "childCount"
	FieldFather          = "fatherCheck"
	FieldMother          = "motherCheck"
	FieldSocialSecurity  = "socialSecurity"
	FieldLifeInsurance   = "lifeInsurance"
	FieldProvidentFund   = "providentFund"
	FieldOtherDeduction  = "otherDeduction"
	FieldDonationGeneral = "donationGeneral"
	FieldDonationSpecial = "donationSpecial"
	FieldWithholdingTax  = "withholdingTax"
	FieldVariant         = "variant"
)

const (
	// MinCounter and MaxCounter bound the +/- buttons of the family counters.
	// Typed or submitted counts are not clamped.
	MinCounter = 0
	MaxCounter = 10
)

// Values is the read side of a submitted form. url.Values satisfies it.
type Values interface {
	Get(key string) string
}

// Collect reads a submission into a variant and a TaxInput.
// Only an unknown variant is an error; bad numbers are coerced to zero.
func Collect(values Values) (domain.Variant, domain.TaxInput, error) {
	variant, err := domain.ParseVariant(values.Get(FieldVariant))
	if err != nil {
		return "", domain.TaxInput{}, err
	}

	in := domain.TaxInput{
		Salary:          ParseAmount(values.Get(FieldSalary)),
		SalaryMonthly:   ParseAmount(values.Get(FieldSalaryMonthly)),
		Bonus:           ParseAmount(values.Get(FieldBonus)),
		OtherIncome:     ParseAmount(values.Get(FieldOtherIncome)),
		Expenses:        ParseAmount(values.Get(FieldExpenses)),
		AutoExpenses:    ParseCheckbox(values.Get(FieldAutoExpenses)),
		HasSpouse:       ParseCheckbox(values.Get(FieldSpouse)),
		ChildCount:      ParseCount(values.Get(FieldChildCount)),
		HasFather:       ParseCheckbox(values.Get(FieldFather)),
		HasMother:       ParseCheckbox(values.Get(FieldMother)),
		SocialSecurity:  ParseAmount(values.Get(FieldSocialSecurity)),
		LifeInsurance:   ParseAmount(values.Get(FieldLifeInsurance)),
		ProvidentFund:   ParseAmount(values.Get(FieldProvidentFund)),
		OtherDeduction:  ParseAmount(values.Get(FieldOtherDeduction)),
		DonationGeneral: ParseAmount(values.Get(FieldDonationGeneral)),
		DonationSpecial: ParseAmount(values.Get(FieldDonationSpecial)),
		WithholdingTax:  ParseAmount(values.Get(FieldWithholdingTax)),
	}
	return variant, in, nil
}

// ParseAmount parses an entered amount, returning zero for blank,
// unparsable or non-finite input. Thousands separators are dropped and only
// the leading number is read, so "50,000 บาท" is 50000.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if m, err := money.ParseMoney(cleaned); err == nil {
		return m.Decimal
	}

	prefix := leadingNumber.FindString(cleaned)
	if prefix == "" {
		return decimal.Zero
	}
	if m, err := money.ParseMoney(prefix); err == nil {
		return m.Decimal
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return decimal.Zero
	}
	m, err := money.FromFloat(f)
	if err != nil {
		return decimal.Zero
	}
	return m.Decimal
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseCheckbox reports whether a checkbox value means checked.
// Browsers send "on" for a checked box and omit unchecked ones.
func ParseCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes", "checked":
		return true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}

// ParseCount reads the leading integer of a counter field. "3 คน" reads
// as 3; anything without digits, or too large for an int, reads as 0.
// The sign is kept so a negative count reaches validation.
func ParseCount(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// StepCounter applies a +/- button press to a counter value, keeping it
// within MinCounter..MaxCounter.
func StepCounter(current, delta int) int {
	return lo.Clamp(current+delta, MinCounter, MaxCounter)
}
