package dateutil

import (
	"time"
)

// BuddhistEraOffset is the difference between Buddhist Era and Gregorian years.
const BuddhistEraOffset = 543

// buddhistEraThreshold separates BE years from CE years in user input.
const buddhistEraThreshold = 2400

// ToBuddhistYear converts a Gregorian year to the Buddhist Era
func ToBuddhistYear(year int) int {
	return year + BuddhistEraOffset
}

// ToGregorianYear converts a Buddhist Era year to Gregorian
func ToGregorianYear(beYear int) int {
	return beYear - BuddhistEraOffset
}

// NormalizeTaxYear accepts either a Buddhist Era or a Gregorian year and returns
// the Gregorian year. Years above 2400 are taken as Buddhist Era.
func NormalizeTaxYear(year int) int {
	if year > buddhistEraThreshold {
		return ToGregorianYear(year)
	}
	return year
}

// TaxYearOf returns the tax year a date falls in (Thai tax years follow the calendar year)
func TaxYearOf(date time.Time) int {
	return date.Year()
}

// FilingDeadline returns the last day to file a paper return for the tax year
func FilingDeadline(taxYear int) time.Time {
	return time.Date(taxYear+1, time.March, 31, 0, 0, 0, 0, time.UTC)
}
