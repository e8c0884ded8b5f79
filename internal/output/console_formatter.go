package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/pkg/dateutil"
)

// ConsoleFormatter renders the detailed Thai report: every filing with its
// deductions, bracket table and settlement.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.FilingComparison) ([]byte, error) {
	var buf bytes.Buffer

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "สรุปการคำนวณภาษีเงินได้บุคคลธรรมดา ปีภาษี %d (%d)\n", dateutil.ToBuddhistYear(results.TaxYear), results.TaxYear)
	fmt.Fprintln(&buf, rule)
	if results.ReportID != "" {
		fmt.Fprintf(&buf, "เลขที่รายงาน: %s\n", results.ReportID)
	}
	fmt.Fprintf(&buf, "กำหนดยื่นแบบ: %s\n", dateutil.FilingDeadline(results.TaxYear).Format("02/01/2006"))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "สมมติฐาน:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, f := range results.Filings {
		fmt.Fprintf(&buf, "รายการที่ %d: %s (%s)\n", i+1, f.Name, f.Result.Variant)
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		writeResult(&buf, f.Result)
		fmt.Fprintln(&buf)
	}

	if len(results.Filings) > 1 {
		rec := AnalyzeFilings(results)
		fmt.Fprintf(&buf, "แนะนำ: %s (ประหยัดกว่ารายการที่แพงที่สุด %s บาท)\n", rec.FilingName, FormatMoney(rec.SavingsVsWorst))
	}
	return buf.Bytes(), nil
}

func writeResult(buf *bytes.Buffer, r *domain.TaxResult) {
	line := func(label string, amount string) {
		fmt.Fprintf(buf, "  %-32s %18s\n", label, amount)
	}

	line("เงินได้รวม", FormatMoney(r.TotalRevenue))
	line("ค่าใช้จ่าย", FormatMoney(r.Expenses))
	line("ค่าลดหย่อน", FormatMoney(r.Deductions.Total))
	if r.Donation != nil {
		line("เงินได้สุทธิก่อนหักเงินบริจาค", FormatMoney(r.NetIncomeBeforeDonation))
		line("เงินบริจาค", FormatMoney(r.Donation.Total))
	}
	line("เงินได้สุทธิ", FormatMoney(r.NetIncome))
	line("ภาษีที่ต้องชำระ", FormatMoney(r.TaxPayable))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "  %-26s %6s %18s\n", "ขั้นเงินได้สุทธิ", "อัตรา", "ภาษี")
	for _, b := range r.Breakdown {
		fmt.Fprintf(buf, "  %-26s %6s %18s\n", b.Range, FormatRate(b.Rate), FormatBracketTax(b))
	}

	if rec := r.Reconciliation; rec != nil {
		fmt.Fprintln(buf)
		line("ภาษีหัก ณ ที่จ่าย", FormatMoney(rec.WithholdingTax))
		line(StatusLabel(rec.Status), FormatMoney(rec.Amount()))
	}
}
