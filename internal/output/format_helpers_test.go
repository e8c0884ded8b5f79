package output

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/thaitax/pit-calculator/internal/domain"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "0.00",
		"21500":      "21,500.00",
		"1234567.5":  "1,234,567.50",
		"1234.567":   "1,234.57",
		"-12500":     "-12,500.00",
		"5000000.01": "5,000,000.01",
		"-0.004":     "0.00",
		"999.995":    "1,000.00",
	}
	for in, want := range cases {
		if got := FormatMoney(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatMoney(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMoneyKeepsExactDigits(t *testing.T) {
	// both values lose their last digit when routed through float64
	cases := map[string]string{
		"90071992547409.99":     "90,071,992,547,409.99",
		"123456789012345678.25": "123,456,789,012,345,678.25",
	}
	for in, want := range cases {
		if got := FormatMoney(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatMoney(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(decimal.RequireFromString("0.05")); got != "5%" {
		t.Errorf("FormatRate(0.05) = %q", got)
	}
	if got := FormatRate(decimal.Zero); got != "0%" {
		t.Errorf("FormatRate(0) = %q", got)
	}
}

func TestFormatBracketTax(t *testing.T) {
	inactive := domain.BracketBreakdown{Tax: decimal.Zero}
	if got := FormatBracketTax(inactive); got != "-" {
		t.Errorf("inactive bracket = %q, want -", got)
	}
	// the exempt band is active with zero tax
	exempt := domain.BracketBreakdown{Active: true, Tax: decimal.Zero}
	if got := FormatBracketTax(exempt); got != "0.00" {
		t.Errorf("active exempt bracket = %q, want 0.00", got)
	}
}

func TestStatusLabel(t *testing.T) {
	if StatusLabel(domain.SettlementRefund) != "ได้รับคืน" {
		t.Error("refund label")
	}
	if StatusLabel(domain.SettlementPayable) != "ชำระเพิ่ม" {
		t.Error("payable label")
	}
	if StatusLabel(domain.SettlementSettled) != "พอดี" {
		t.Error("settled label")
	}
}

func TestIntAndBoolToString(t *testing.T) {
	if got := intToString(42); got != "42" {
		t.Errorf("intToString(42) = %q", got)
	}
	if boolToString(true) != "true" || boolToString(false) != "false" {
		t.Error("boolToString")
	}
}
