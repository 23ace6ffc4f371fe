package dateutil

import (
	"time"
)

// Age calculates the age in whole years at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AddYears adds years to a date. A Feb 29 birthday lands on Mar 1 in non-leap years.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}
