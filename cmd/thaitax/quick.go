package main

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/thaitax/pit-calculator/internal/calculation"
	"github.com/thaitax/pit-calculator/internal/domain"
	"github.com/thaitax/pit-calculator/internal/form"
)

// quickFlags maps command line flags to calculator form fields.
var quickFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"salary", form.FieldSalary, "annual salary (simple variant)"},
	{"salary-monthly", form.FieldSalaryMonthly, "monthly salary (extended variant)"},
	{"bonus", form.FieldBonus, "annual bonus (extended variant)"},
	{"other-income", form.FieldOtherIncome, "other income"},
	{"expenses", form.FieldExpenses, "expenses"},
	{"children", form.FieldChildCount, "number of children"},
	{"social-security", form.FieldSocialSecurity, "social security contributions"},
	{"life-insurance", form.FieldLifeInsurance, "life insurance premiums"},
	{"provident-fund", form.FieldProvidentFund, "provident fund contributions"},
	{"other-deduction", form.FieldOtherDeduction, "other deductions"},
	{"donation-general", form.FieldDonationGeneral, "general donations (extended variant)"},
	{"donation-special", form.FieldDonationSpecial, "special donations, credited at twice their amount subject to the 10% cap (extended variant)"},
	{"withholding-tax", form.FieldWithholdingTax, "tax withheld during the year (extended variant)"},
	{"variant", form.FieldVariant, "simple or extended"},
}

var quickSwitches = []struct {
	flag  string
	field string
	usage string
}{
	{"auto-expenses", form.FieldAutoExpenses, "use the standard expense allowance instead of --expenses"},
	{"spouse", form.FieldSpouse, "claim the spouse allowance"},
	{"father", form.FieldFather, "claim the allowance for your father"},
	{"mother", form.FieldMother, "claim the allowance for your mother"},
}

func newQuickCmd(root *rootOptions) *cobra.Command {
	var format string
	values := make(map[string]*string, len(quickFlags))
	switches := make(map[string]*bool, len(quickSwitches))

	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Calculate a single return from flags",
		Example: "  thaitax quick --salary 600,000 --auto-expenses\n" +
			"  thaitax quick --variant extended --salary-monthly 50000 --expenses 100000 --spouse --children 1 --withholding-tax 25000",
		RunE: func(cmd *cobra.Command, args []string) error {
			submitted := url.Values{}
			for _, f := range quickFlags {
				submitted.Set(f.field, *values[f.flag])
			}
			for _, s := range quickSwitches {
				if *switches[s.flag] {
					submitted.Set(s.field, "on")
				}
			}

			variant, in, err := form.Collect(submitted)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(root.logger(cmd))
			results, err := engine.RunFilings(&domain.Configuration{
				Filings: []domain.Filing{{Name: "quick", Variant: variant, Input: in}},
			})
			if err != nil {
				return err
			}
			return writeReport(cmd, results, format)
		},
	}

	for _, f := range quickFlags {
		values[f.flag] = cmd.Flags().String(f.flag, "", f.usage)
	}
	for _, s := range quickSwitches {
		switches[s.flag] = cmd.Flags().Bool(s.flag, false, s.usage)
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	return cmd
}
