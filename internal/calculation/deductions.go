package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
	money "github.com/thaitax/pit-calculator/pkg/decimal"
)

// DEDUCTION ASSUMPTIONS:
//
// 1. Employment expenses: 50% of salary income, capped at 100,000
// 2. Personal 60,000; spouse 60,000; 30,000 per child with no limit on children
// 3. 30,000 per supported parent, at most 60,000
// 4. Social security, life insurance, provident fund and other deductions are
//    taken at face value with no statutory caps
var (
	ExpenseRate         = decimal.RequireFromString("0.5")
	MaxExpenseAllowance = decimal.NewFromInt(100000)

	PersonalAllowance  = decimal.NewFromInt(60000)
	SpouseAllowance    = decimal.NewFromInt(60000)
	ChildAllowance     = decimal.NewFromInt(30000)
	ParentAllowance    = decimal.NewFromInt(30000)
	MaxParentAllowance = decimal.NewFromInt(60000)
)

// ExpenseAllowance is the standard expense deduction for salary income.
func ExpenseAllowance(salaryIncome decimal.Decimal) decimal.Decimal {
	allowance := money.NewMoneyFromDecimal(salaryIncome).Mul(ExpenseRate)
	return money.Min(allowance, money.NewMoneyFromDecimal(MaxExpenseAllowance)).Decimal
}

// ComputeDeductions totals the allowances taken before donations.
func ComputeDeductions(in domain.TaxInput) domain.DeductionSummary {
	spouse := decimal.Zero
	if in.HasSpouse {
		spouse = SpouseAllowance
	}

	parents := decimal.Zero
	if in.HasFather {
		parents = parents.Add(ParentAllowance)
	}
	if in.HasMother {
		parents = parents.Add(ParentAllowance)
	}
	parents = decimal.Min(parents, MaxParentAllowance)

	s := domain.DeductionSummary{
		Personal:       PersonalAllowance,
		Spouse:         spouse,
		Children:       ChildAllowance.Mul(decimal.NewFromInt(int64(in.ChildCount))),
		Parents:        parents,
		SocialSecurity: in.SocialSecurity,
		LifeInsurance:  in.LifeInsurance,
		ProvidentFund:  in.ProvidentFund,
		Other:          in.OtherDeduction,
	}
	s.Total = s.Personal.Add(s.Spouse).Add(s.Children).Add(s.Parents).
		Add(s.SocialSecurity).Add(s.LifeInsurance).Add(s.ProvidentFund).Add(s.Other)
	return s
}

// NetIncomeBeforeDonation subtracts expenses and deductions from revenue, floored at zero.
func NetIncomeBeforeDonation(totalRevenue, expenses, deductions decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(totalRevenue).
		Sub(money.NewMoneyFromDecimal(expenses)).
		Sub(money.NewMoneyFromDecimal(deductions)).
		NonNegative().Decimal
}
