package output

import (
	"fmt"

	"github.com/thaitax/pit-calculator/internal/calculation"
)

// DefaultAssumptions lists the rules behind every calculation, rendered in detailed outputs.
var DefaultAssumptions = GenerateAssumptions()

// GenerateAssumptions builds the assumptions list from the engine's allowance table
func GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("ค่าใช้จ่าย: %s ของเงินเดือน ไม่เกิน %s บาท",
			FormatRate(calculation.ExpenseRate), FormatMoney(calculation.MaxExpenseAllowance)),
		fmt.Sprintf("ลดหย่อนส่วนตัว %s บาท, คู่สมรส %s บาท",
			FormatMoney(calculation.PersonalAllowance), FormatMoney(calculation.SpouseAllowance)),
		fmt.Sprintf("บุตร %s บาทต่อคน ไม่จำกัดจำนวน", FormatMoney(calculation.ChildAllowance)),
		fmt.Sprintf("บิดามารดา %s บาทต่อคน รวมไม่เกิน %s บาท",
			FormatMoney(calculation.ParentAllowance), FormatMoney(calculation.MaxParentAllowance)),
		fmt.Sprintf("เงินบริจาคพิเศษหักได้ %s เท่า และเงินบริจาคแต่ละประเภทไม่เกิน %s ของเงินได้สุทธิ",
			calculation.SpecialDonationMultiplier.String(), FormatRate(calculation.DonationCapRate)),
		"ประกันสังคม ประกันชีวิต และกองทุนสำรองเลี้ยงชีพ หักตามจำนวนที่กรอก",
	}
}
