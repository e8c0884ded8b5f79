package calculation

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// TaxBracket is one band of the progressive schedule.
// The top band is Unbounded and its Upper is ignored.
type TaxBracket struct {
	Lower     decimal.Decimal
	Upper     decimal.Decimal
	Unbounded bool
	Rate      decimal.Decimal
}

// ThaiBrackets returns the personal income tax schedule.
// A fresh slice is returned on every call so callers cannot alter the table.
func ThaiBrackets() []TaxBracket {
	return []TaxBracket{
		{decimal.Zero, decimal.NewFromInt(150000), false, decimal.Zero},
		{decimal.NewFromInt(150000), decimal.NewFromInt(300000), false, decimal.RequireFromString("0.05")},
		{decimal.NewFromInt(300000), decimal.NewFromInt(500000), false, decimal.RequireFromString("0.10")},
		{decimal.NewFromInt(500000), decimal.NewFromInt(750000), false, decimal.RequireFromString("0.15")},
		{decimal.NewFromInt(750000), decimal.NewFromInt(1000000), false, decimal.RequireFromString("0.20")},
		{decimal.NewFromInt(1000000), decimal.NewFromInt(2000000), false, decimal.RequireFromString("0.25")},
		{decimal.NewFromInt(2000000), decimal.NewFromInt(5000000), false, decimal.RequireFromString("0.30")},
		{decimal.NewFromInt(5000000), decimal.Zero, true, decimal.RequireFromString("0.35")},
	}
}

// RangeLabel renders a band as "150,001 - 300,000" or "5,000,001 ขึ้นไป".
// prevLimit is the upper bound of the band below.
func RangeLabel(prevLimit decimal.Decimal, b TaxBracket) string {
	p := message.NewPrinter(language.Thai)
	from := prevLimit
	if prevLimit.IsPositive() {
		from = prevLimit.Add(decimal.NewFromInt(1))
	}
	if b.Unbounded {
		return p.Sprintf("%d ขึ้นไป", from.IntPart())
	}
	return p.Sprintf("%d - %d", from.IntPart(), b.Upper.IntPart())
}

// ApplyProgressiveBrackets taxes netIncome band by band.
// Every band is reported, including those the income never reaches.
func ApplyProgressiveBrackets(netIncome decimal.Decimal, brackets []TaxBracket) (decimal.Decimal, []domain.BracketBreakdown) {
	taxPayable := decimal.Zero
	remaining := netIncome
	prevLimit := decimal.Zero
	breakdown := make([]domain.BracketBreakdown, 0, len(brackets))

	for _, b := range brackets {
		incomeInBracket := decimal.Zero
		if remaining.IsPositive() {
			if b.Unbounded {
				incomeInBracket = remaining
			} else {
				incomeInBracket = decimal.Min(remaining, b.Upper.Sub(prevLimit))
			}
		}

		taxInBracket := incomeInBracket.Mul(b.Rate)
		taxPayable = taxPayable.Add(taxInBracket)
		remaining = remaining.Sub(incomeInBracket)

		breakdown = append(breakdown, domain.BracketBreakdown{
			Range:           RangeLabel(prevLimit, b),
			Lower:           prevLimit,
			Upper:           b.Upper,
			Unbounded:       b.Unbounded,
			Rate:            b.Rate,
			IncomeInBracket: incomeInBracket,
			Tax:             taxInBracket,
			Active:          incomeInBracket.IsPositive(),
		})

		if !b.Unbounded {
			prevLimit = b.Upper
		}
	}

	return taxPayable, breakdown
}

// TotalIncomeInBrackets sums the income allocated across a breakdown.
func TotalIncomeInBrackets(breakdown []domain.BracketBreakdown) decimal.Decimal {
	return lo.Reduce(breakdown, func(acc decimal.Decimal, b domain.BracketBreakdown, _ int) decimal.Decimal {
		return acc.Add(b.IncomeInBracket)
	}, decimal.Zero)
}
