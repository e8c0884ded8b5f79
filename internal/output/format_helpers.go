package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/thaitax/pit-calculator/internal/domain"
	money "github.com/thaitax/pit-calculator/pkg/decimal"
)

// FormatMoney formats a baht amount the Thai way: grouped thousands, two decimals.
// Digits come from the decimal itself; only the whole part goes through the
// locale printer for grouping.
func FormatMoney(amount decimal.Decimal) string {
	fixed := money.NewMoneyFromDecimal(amount).Round().String()
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + fixed
	}
	p := message.NewPrinter(language.Thai)
	return sign + p.Sprintf("%d", n) + "." + frac
}

// FormatRate formats a bracket rate such as 0.05 as "5%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}

// FormatBracketTax shows the tax of an active bracket and "-" for the rest.
func FormatBracketTax(b domain.BracketBreakdown) string {
	if !b.Active {
		return "-"
	}
	return FormatMoney(b.Tax)
}

// StatusLabel is the Thai wording for a settlement status.
func StatusLabel(status domain.SettlementStatus) string {
	switch status {
	case domain.SettlementPayable:
		return "ชำระเพิ่ม"
	case domain.SettlementRefund:
		return "ได้รับคืน"
	default:
		return "พอดี"
	}
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
