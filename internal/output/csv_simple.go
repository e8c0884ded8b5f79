package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per filing).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.FilingComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Filing", "Variant", "TotalRevenue", "Expenses", "Deductions", "NetIncomeBeforeDonation", "DonationDeduction", "NetIncome", "TaxPayable", "WithholdingTax", "FinalDue", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, f := range sortedFilings(results) {
		r := f.Result
		donation, withholding, finalDue, status := decimal.Zero, decimal.Zero, r.TaxPayable, ""
		if r.Donation != nil {
			donation = r.Donation.Total
		}
		if r.Reconciliation != nil {
			withholding = r.Reconciliation.WithholdingTax
			finalDue = r.Reconciliation.FinalDue
			status = string(r.Reconciliation.Status)
		}
		row := []string{
			f.Name,
			string(r.Variant),
			r.TotalRevenue.StringFixed(2),
			r.Expenses.StringFixed(2),
			r.Deductions.Total.StringFixed(2),
			r.NetIncomeBeforeDonation.StringFixed(2),
			donation.StringFixed(2),
			r.NetIncome.StringFixed(2),
			r.TaxPayable.StringFixed(2),
			withholding.StringFixed(2),
			finalDue.StringFixed(2),
			status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
