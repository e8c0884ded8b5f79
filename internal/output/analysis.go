package output

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best filing.
type Recommendation struct {
	FilingName    string
	FinalPosition decimal.Decimal
	// SavingsVsWorst is how much less the recommended filing owes than the costliest one.
	SavingsVsWorst decimal.Decimal
}

// AnalyzeFilings picks the filing with the lowest final position (tax still owed,
// negative for a refund). Ties keep the filing listed first.
func AnalyzeFilings(results *domain.FilingComparison) Recommendation {
	calculated := lo.Filter(results.Filings, func(f domain.FilingResult, _ int) bool {
		return f.Result != nil
	})
	if len(calculated) == 0 {
		return Recommendation{}
	}

	best := lo.MinBy(calculated, func(a, b domain.FilingResult) bool {
		return a.Result.FinalPosition().LessThan(b.Result.FinalPosition())
	})
	worst := lo.MaxBy(calculated, func(a, b domain.FilingResult) bool {
		return a.Result.FinalPosition().GreaterThan(b.Result.FinalPosition())
	})
	return Recommendation{
		FilingName:     best.Name,
		FinalPosition:  best.Result.FinalPosition(),
		SavingsVsWorst: worst.Result.FinalPosition().Sub(best.Result.FinalPosition()),
	}
}
