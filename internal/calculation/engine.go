package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/pkg/dateutil"
	money "github.com/thaitax/pit-calculator/pkg/decimal"
)

// ErrIncompleteSchedule is returned when the bracket table cannot absorb the
// whole net income, e.g. a table without an unbounded top band.
var ErrIncompleteSchedule = errors.New("bracket schedule does not cover net income")

// CalculationEngine runs the tax pipeline. It holds no per-call state and is
// safe for concurrent use once configured.
type CalculationEngine struct {
	Brackets []TaxBracket
	Logger   Logger
}

// NewCalculationEngine creates an engine with the Thai bracket schedule
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Brackets: ThaiBrackets(),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// SalaryIncome returns the annual salary income for the variant.
func SalaryIncome(variant domain.Variant, in domain.TaxInput) decimal.Decimal {
	if variant == domain.VariantExtended {
		return money.NewMoneyFromDecimal(in.SalaryMonthly).Annual().Add(money.NewMoneyFromDecimal(in.Bonus)).Decimal
	}
	return in.Salary
}

// Calculate runs the full pipeline for one taxpayer:
// deductions, donation caps (extended), net income, brackets and
// withholding reconciliation (extended).
func (ce *CalculationEngine) Calculate(variant domain.Variant, in domain.TaxInput) (*domain.TaxResult, error) {
	if !variant.Valid() {
		return nil, &domain.InputError{Field: "variant", Reason: fmt.Sprintf("unknown variant %q", variant)}
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	salaryIncome := SalaryIncome(variant, in)
	totalRevenue := salaryIncome.Add(in.OtherIncome)

	expenses := in.Expenses
	if in.AutoExpenses {
		expenses = ExpenseAllowance(salaryIncome)
	}

	deductions := ComputeDeductions(in)
	netBeforeDonation := NetIncomeBeforeDonation(totalRevenue, expenses, deductions.Total)

	result := &domain.TaxResult{
		Variant:                 variant,
		TotalRevenue:            totalRevenue,
		Expenses:                expenses,
		Deductions:              deductions,
		NetIncomeBeforeDonation: netBeforeDonation,
		NetIncome:               netBeforeDonation,
	}

	if variant == domain.VariantExtended {
		donation := ComputeDonationDeduction(netBeforeDonation, in.DonationGeneral, in.DonationSpecial)
		result.Donation = &donation
		result.NetIncome = FinalNetIncome(netBeforeDonation, donation.Total)
	} else if !in.DonationGeneral.IsZero() || !in.DonationSpecial.IsZero() || !in.WithholdingTax.IsZero() {
		ce.Logger.Warnf("simple variant ignores donations and withholding tax")
	}

	result.TaxPayable, result.Breakdown = ApplyProgressiveBrackets(result.NetIncome, ce.Brackets)
	if allocated := TotalIncomeInBrackets(result.Breakdown); !allocated.Equal(result.NetIncome) {
		return nil, fmt.Errorf("%w: allocated %s of net income %s",
			ErrIncompleteSchedule, allocated.StringFixed(2), result.NetIncome.StringFixed(2))
	}

	if variant == domain.VariantExtended {
		rec := ComputeFinalDue(result.TaxPayable, in.WithholdingTax)
		result.Reconciliation = &rec
	}

	ce.Logger.Debugf("variant=%s revenue=%s expenses=%s deductions=%s net_before_donation=%s net=%s tax=%s",
		variant, totalRevenue.StringFixed(2), expenses.StringFixed(2), deductions.Total.StringFixed(2),
		netBeforeDonation.StringFixed(2), result.NetIncome.StringFixed(2), result.TaxPayable.StringFixed(2))

	return result, nil
}

// RunFilings calculates every filing in the configuration
func (ce *CalculationEngine) RunFilings(config *domain.Configuration) (*domain.FilingComparison, error) {
	taxYear := config.TaxYear
	if taxYear == 0 {
		taxYear = dateutil.TaxYearOf(nowFunc())
	}

	comparison := &domain.FilingComparison{
		ReportID: reportIDFunc(),
		TaxYear:  taxYear,
		Filings:  make([]domain.FilingResult, 0, len(config.Filings)),
	}

	for _, filing := range config.Filings {
		result, err := ce.Calculate(filing.Variant, filing.Input)
		if err != nil {
			return nil, fmt.Errorf("filing %q: %w", filing.Name, err)
		}
		comparison.Filings = append(comparison.Filings, domain.FilingResult{
			Name:   filing.Name,
			Input:  filing.Input,
			Result: result,
		})
	}

	ce.Logger.Infof("calculated %d filings for tax year %d", len(comparison.Filings), taxYear)
	return comparison, nil
}
