package calculation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// recordingLogger captures log lines so tests can assert on them.
type recordingLogger struct {
	warnings []string
	infos    []string
}

func (r *recordingLogger) Debugf(string, ...interface{}) {}
func (r *recordingLogger) Infof(format string, args ...interface{}) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Warnf(format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Errorf(string, ...interface{}) {}

func TestCalculateSimpleWithAutoExpenses(t *testing.T) {
	ce := NewCalculationEngine()

	result, err := ce.Calculate(domain.VariantSimple, domain.TaxInput{
		Salary:       dec("600000"),
		AutoExpenses: true,
	})
	require.NoError(t, err)

	assertDecimal(t, "600000", result.TotalRevenue)
	assertDecimal(t, "100000", result.Expenses)
	assertDecimal(t, "60000", result.Deductions.Total)
	assertDecimal(t, "440000", result.NetIncome)
	assertDecimal(t, "21500", result.TaxPayable)
	assert.Nil(t, result.Donation)
	assert.Nil(t, result.Reconciliation)

	require.Len(t, result.Breakdown, 8)
	assertDecimal(t, "150000", result.Breakdown[0].IncomeInBracket)
	assertDecimal(t, "150000", result.Breakdown[1].IncomeInBracket)
	assertDecimal(t, "7500", result.Breakdown[1].Tax)
	assertDecimal(t, "140000", result.Breakdown[2].IncomeInBracket)
	assertDecimal(t, "14000", result.Breakdown[2].Tax)
	for _, b := range result.Breakdown[3:] {
		assert.False(t, b.Active, b.Range)
	}
	assertDecimal(t, "21500", result.FinalPosition())
}

func TestCalculateExtendedWithRefund(t *testing.T) {
	ce := NewCalculationEngine()

	result, err := ce.Calculate(domain.VariantExtended, domain.TaxInput{
		SalaryMonthly:  dec("50000"),
		Expenses:       dec("100000"),
		HasSpouse:      true,
		ChildCount:     1,
		WithholdingTax: dec("25000"),
	})
	require.NoError(t, err)

	assertDecimal(t, "600000", result.TotalRevenue)
	assertDecimal(t, "150000", result.Deductions.Total)
	assertDecimal(t, "350000", result.NetIncomeBeforeDonation)
	require.NotNil(t, result.Donation)
	assertDecimal(t, "0", result.Donation.Total)
	assertDecimal(t, "350000", result.NetIncome)
	assertDecimal(t, "12500", result.TaxPayable)

	require.NotNil(t, result.Reconciliation)
	assertDecimal(t, "-12500", result.Reconciliation.FinalDue)
	assert.Equal(t, domain.SettlementRefund, result.Reconciliation.Status)
	assertDecimal(t, "12500", result.Reconciliation.Amount())
	assertDecimal(t, "-12500", result.FinalPosition())
}

func TestCalculateExtendedWithDonations(t *testing.T) {
	ce := NewCalculationEngine()

	result, err := ce.Calculate(domain.VariantExtended, domain.TaxInput{
		SalaryMonthly:   dec("50000"),
		Expenses:        dec("100000"),
		HasSpouse:       true,
		ChildCount:      1,
		DonationGeneral: dec("50000"),
		DonationSpecial: dec("20000"),
	})
	require.NoError(t, err)

	assertDecimal(t, "35000", result.Donation.Special)
	assertDecimal(t, "31500", result.Donation.General)
	assertDecimal(t, "283500", result.NetIncome)
	assertDecimal(t, "6675", result.TaxPayable)
	assert.Equal(t, domain.SettlementPayable, result.Reconciliation.Status)
}

func TestCalculateExtendedIncludesBonusAndOtherIncome(t *testing.T) {
	ce := NewCalculationEngine()

	result, err := ce.Calculate(domain.VariantExtended, domain.TaxInput{
		SalaryMonthly: dec("30000"),
		Bonus:         dec("60000"),
		OtherIncome:   dec("40000"),
		AutoExpenses:  true,
	})
	require.NoError(t, err)

	assertDecimal(t, "460000", result.TotalRevenue)
	// auto expenses only consider salary income (420000), capped at 100000
	assertDecimal(t, "100000", result.Expenses)
	assertDecimal(t, "300000", result.NetIncome)
	assertDecimal(t, "7500", result.TaxPayable)
}

func TestCalculateSimpleIgnoresExtendedFields(t *testing.T) {
	ce := NewCalculationEngine()
	logger := &recordingLogger{}
	ce.SetLogger(logger)

	result, err := ce.Calculate(domain.VariantSimple, domain.TaxInput{
		Salary:          dec("600000"),
		AutoExpenses:    true,
		SalaryMonthly:   dec("99999"),
		DonationGeneral: dec("10000"),
		WithholdingTax:  dec("5000"),
	})
	require.NoError(t, err)

	assertDecimal(t, "440000", result.NetIncome)
	assertDecimal(t, "21500", result.TaxPayable)
	assert.Nil(t, result.Reconciliation)
	assert.Len(t, logger.warnings, 1)
}

func TestCalculateBracketBoundary(t *testing.T) {
	ce := NewCalculationEngine()

	result, err := ce.Calculate(domain.VariantSimple, domain.TaxInput{Salary: dec("210000")})
	require.NoError(t, err)

	assertDecimal(t, "150000", result.NetIncome)
	assertDecimal(t, "0", result.TaxPayable)
	assert.True(t, result.Breakdown[0].Active)
	assert.False(t, result.Breakdown[1].Active)
}

func TestCalculateFloorsNetIncome(t *testing.T) {
	ce := NewCalculationEngine()

	result, err := ce.Calculate(domain.VariantExtended, domain.TaxInput{
		SalaryMonthly: dec("5000"),
		ChildCount:    3,
		HasFather:     true,
		HasMother:     true,
	})
	require.NoError(t, err)

	assertDecimal(t, "0", result.NetIncomeBeforeDonation)
	assertDecimal(t, "0", result.NetIncome)
	assertDecimal(t, "0", result.TaxPayable)
	assert.Equal(t, domain.SettlementSettled, result.Reconciliation.Status)
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	ce := NewCalculationEngine()

	tests := []struct {
		name    string
		variant domain.Variant
		input   domain.TaxInput
		field   string
	}{
		{name: "Negative salary", variant: domain.VariantSimple, input: domain.TaxInput{Salary: dec("-1")}, field: "salary"},
		{name: "Negative withholding", variant: domain.VariantExtended, input: domain.TaxInput{WithholdingTax: dec("-0.01")}, field: "withholding_tax"},
		{name: "Negative child count", variant: domain.VariantExtended, input: domain.TaxInput{ChildCount: -1}, field: "child_count"},
		{name: "Unknown variant", variant: domain.Variant("joint"), input: domain.TaxInput{}, field: "variant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ce.Calculate(tt.variant, tt.input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))

			var inputErr *domain.InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	ce := NewCalculationEngine()
	in := domain.TaxInput{
		SalaryMonthly:   dec("85000"),
		Bonus:           dec("170000"),
		AutoExpenses:    true,
		HasSpouse:       true,
		ChildCount:      2,
		HasMother:       true,
		SocialSecurity:  dec("9000"),
		ProvidentFund:   dec("51000"),
		DonationGeneral: dec("12000"),
		DonationSpecial: dec("3000"),
		WithholdingTax:  dec("60000"),
	}

	first, err := ce.Calculate(domain.VariantExtended, in)
	require.NoError(t, err)
	second, err := ce.Calculate(domain.VariantExtended, in)
	require.NoError(t, err)

	assert.True(t, first.TaxPayable.Equal(second.TaxPayable))
	assert.True(t, first.Reconciliation.FinalDue.Equal(second.Reconciliation.FinalDue))
	assert.Equal(t, len(first.Breakdown), len(second.Breakdown))
	for i := range first.Breakdown {
		assert.True(t, first.Breakdown[i].IncomeInBracket.Equal(second.Breakdown[i].IncomeInBracket))
	}
}

func TestRunFilings(t *testing.T) {
	origNow, origID := nowFunc, reportIDFunc
	defer func() {
		SetNowFunc(origNow)
		SetReportIDFunc(origID)
	}()
	SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) })
	SetReportIDFunc(func() string { return "report-1" })

	ce := NewCalculationEngine()
	logger := &recordingLogger{}
	ce.SetLogger(logger)

	config := &domain.Configuration{
		Filings: []domain.Filing{
			{Name: "quick", Variant: domain.VariantSimple, Input: domain.TaxInput{Salary: dec("600000"), AutoExpenses: true}},
			{Name: "full", Variant: domain.VariantExtended, Input: domain.TaxInput{
				SalaryMonthly: dec("50000"), Expenses: dec("100000"), HasSpouse: true, ChildCount: 1, WithholdingTax: dec("25000"),
			}},
		},
	}

	comparison, err := ce.RunFilings(config)
	require.NoError(t, err)

	assert.Equal(t, "report-1", comparison.ReportID)
	assert.Equal(t, 2025, comparison.TaxYear)
	require.Len(t, comparison.Filings, 2)
	assert.Equal(t, "quick", comparison.Filings[0].Name)
	assertDecimal(t, "21500", comparison.Filings[0].Result.TaxPayable)
	assertDecimal(t, "12500", comparison.Filings[1].Result.TaxPayable)
	assert.Len(t, logger.infos, 1)
}

func TestRunFilingsKeepsConfiguredYear(t *testing.T) {
	ce := NewCalculationEngine()
	comparison, err := ce.RunFilings(&domain.Configuration{
		TaxYear: 2024,
		Filings: []domain.Filing{{Name: "a", Variant: domain.VariantSimple}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2024, comparison.TaxYear)
}

func TestRunFilingsWrapsFilingName(t *testing.T) {
	ce := NewCalculationEngine()
	_, err := ce.RunFilings(&domain.Configuration{
		Filings: []domain.Filing{{Name: "broken", Variant: domain.VariantSimple, Input: domain.TaxInput{Bonus: dec("-5")}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `filing "broken"`)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	ce := NewCalculationEngine()
	ce.SetLogger(nil)
	_, err := ce.Calculate(domain.VariantSimple, domain.TaxInput{DonationGeneral: dec("1")})
	assert.NoError(t, err)
}

func TestCalculateRejectsScheduleWithoutTopBand(t *testing.T) {
	ce := NewCalculationEngine()
	ce.Brackets = ThaiBrackets()[:2]

	result, err := ce.Calculate(domain.VariantSimple, domain.TaxInput{Salary: dec("200000")})
	require.NoError(t, err, "net income 140,000 fits inside the first band")
	assertDecimal(t, "0", result.TaxPayable)

	result, err = ce.Calculate(domain.VariantSimple, domain.TaxInput{Salary: dec("1000000")})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteSchedule))
	assert.Contains(t, err.Error(), "allocated 300000.00 of net income 940000.00")
}
