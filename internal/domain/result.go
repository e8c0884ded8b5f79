package domain

import (
	"github.com/shopspring/decimal"
)

// DeductionSummary itemises the pre-donation allowances.
type DeductionSummary struct {
	Personal       decimal.Decimal `json:"personal"`
	Spouse         decimal.Decimal `json:"spouse"`
	Children       decimal.Decimal `json:"children"`
	Parents        decimal.Decimal `json:"parents"`
	SocialSecurity decimal.Decimal `json:"socialSecurity"`
	LifeInsurance  decimal.Decimal `json:"lifeInsurance"`
	ProvidentFund  decimal.Decimal `json:"providentFund"`
	Other          decimal.Decimal `json:"other"`
	Total          decimal.Decimal `json:"total"`
}

// DonationDeduction is the outcome of the two stage donation cap.
type DonationDeduction struct {
	Limit   decimal.Decimal `json:"limit"`
	Special decimal.Decimal `json:"special"`
	General decimal.Decimal `json:"general"`
	Total   decimal.Decimal `json:"total"`
}

// BracketBreakdown is one row of the progressive schedule as applied to an income.
type BracketBreakdown struct {
	Range           string          `json:"range"`
	Lower           decimal.Decimal `json:"lower"`
	Upper           decimal.Decimal `json:"upper"`
	Unbounded       bool            `json:"unbounded"`
	Rate            decimal.Decimal `json:"rate"`
	IncomeInBracket decimal.Decimal `json:"incomeInBracket"`
	Tax             decimal.Decimal `json:"tax"`
	Active          bool            `json:"active"`
}

// SettlementStatus classifies the result of withholding reconciliation.
type SettlementStatus string

const (
	SettlementPayable SettlementStatus = "payable"
	SettlementRefund  SettlementStatus = "refund"
	SettlementSettled SettlementStatus = "settled"
)

// Reconciliation compares the tax payable with tax already withheld.
// FinalDue is negative when the taxpayer is owed a refund.
type Reconciliation struct {
	WithholdingTax decimal.Decimal  `json:"withholdingTax"`
	FinalDue       decimal.Decimal  `json:"finalDue"`
	Status         SettlementStatus `json:"status"`
}

// Amount returns the magnitude to pay or refund; zero when settled.
func (r Reconciliation) Amount() decimal.Decimal {
	if r.Status == SettlementSettled {
		return decimal.Zero
	}
	return r.FinalDue.Abs()
}

// TaxResult is the output of one calculation.
// Donation and Reconciliation are nil for the simple variant.
type TaxResult struct {
	Variant                 Variant            `json:"variant"`
	TotalRevenue            decimal.Decimal    `json:"totalRevenue"`
	Expenses                decimal.Decimal    `json:"expenses"`
	Deductions              DeductionSummary   `json:"deductions"`
	NetIncomeBeforeDonation decimal.Decimal    `json:"netIncomeBeforeDonation"`
	Donation                *DonationDeduction `json:"donation,omitempty"`
	NetIncome               decimal.Decimal    `json:"netIncome"`
	TaxPayable              decimal.Decimal    `json:"taxPayable"`
	Breakdown               []BracketBreakdown `json:"breakdown"`
	Reconciliation          *Reconciliation    `json:"reconciliation,omitempty"`
}

// FinalPosition is the amount still owed after withholding (negative for a refund).
// For the simple variant it is the tax payable.
func (r *TaxResult) FinalPosition() decimal.Decimal {
	if r.Reconciliation != nil {
		return r.Reconciliation.FinalDue
	}
	return r.TaxPayable
}

// FilingResult pairs a filing with its calculated result.
type FilingResult struct {
	Name   string     `json:"name"`
	Input  TaxInput   `json:"input"`
	Result *TaxResult `json:"result"`
}

// FilingComparison collects the results of every filing in a configuration.
type FilingComparison struct {
	ReportID string         `json:"report_id"`
	TaxYear  int            `json:"tax_year"`
	Filings  []FilingResult `json:"filings"`
}
