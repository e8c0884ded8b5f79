package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
	money "github.com/thaitax/pit-calculator/pkg/decimal"
)

var (
	// DonationCapRate limits each donation stage to 10% of its base.
	DonationCapRate = decimal.RequireFromString("0.10")
	// SpecialDonationMultiplier doubles special category donations before capping.
	SpecialDonationMultiplier = decimal.NewFromInt(2)
)

// ComputeDonationDeduction applies the two stage donation cap.
//
// Special donations are doubled and capped at 10% of netIncomeBeforeDonation.
// General donations are then capped at 10% of the income left after the
// special deduction, so the order of the two stages matters.
func ComputeDonationDeduction(netIncomeBeforeDonation, general, special decimal.Decimal) domain.DonationDeduction {
	limit := netIncomeBeforeDonation.Mul(DonationCapRate)
	specialDeduct := decimal.Min(special.Mul(SpecialDonationMultiplier), limit)

	remainingForGeneral := netIncomeBeforeDonation.Sub(specialDeduct)
	generalLimit := remainingForGeneral.Mul(DonationCapRate)
	generalDeduct := decimal.Min(general, generalLimit)

	return domain.DonationDeduction{
		Limit:   limit,
		Special: specialDeduct,
		General: generalDeduct,
		Total:   specialDeduct.Add(generalDeduct),
	}
}

// FinalNetIncome subtracts the donation deduction, floored at zero.
func FinalNetIncome(netIncomeBeforeDonation, donationTotal decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(netIncomeBeforeDonation).
		Sub(money.NewMoneyFromDecimal(donationTotal)).
		NonNegative().Decimal
}
