package domain

import "time"

// AgeOn returns the person's age in completed years at the reference time.
// Both instants are normalised to UTC and calendar arithmetic (AddDate) is used,
// so a Feb 29 birthday turns over on Mar 1 in non-leap years.
// A reference time before the birth date yields 0.
func AgeOn(birthDate, now time.Time) int {
	birth := birthDate.UTC()
	ref := now.UTC()
	if ref.Before(birth) {
		return 0
	}
	years := ref.Year() - birth.Year()
	if ref.Before(birth.AddDate(years, 0, 0)) {
		years--
	}
	return years
}

// IsAtLeast reports whether the person is at least the given number of years old.
func IsAtLeast(birthDate, now time.Time, years int) bool {
	reachedAt := birthDate.UTC().AddDate(years, 0, 0)
	return !now.UTC().Before(reachedAt)
}

// IsOver18 returns true if the person is 18 or older at the reference time.
//
// Example:
//
//	birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)
//	now := time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC) // exactly 18th birthday
//	IsOver18(birthDate, now) // true
func IsOver18(birthDate, now time.Time) bool {
	return IsAtLeast(birthDate, now, 18)
}
