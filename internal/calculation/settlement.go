package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// SettlementTolerance is the largest difference still treated as fully settled.
var SettlementTolerance = decimal.RequireFromString("0.01")

// ComputeFinalDue reconciles the tax payable against tax already withheld.
func ComputeFinalDue(taxPayable, withholdingTax decimal.Decimal) domain.Reconciliation {
	finalDue := taxPayable.Sub(withholdingTax)

	status := domain.SettlementPayable
	switch {
	case finalDue.Abs().LessThan(SettlementTolerance):
		status = domain.SettlementSettled
	case finalDue.IsNegative():
		status = domain.SettlementRefund
	}

	return domain.Reconciliation{
		WithholdingTax: withholdingTax,
		FinalDue:       finalDue,
		Status:         status,
	}
}
