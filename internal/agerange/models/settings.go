package models

import (
	"fmt"
	"time"

	"agerange/pkg/domain"
	dErrors "agerange/pkg/domain-errors"
)

// MockSharingPreference is a hypothetical persistent choice a person made
// about sharing their age range with apps.
type MockSharingPreference string

const (
	SharingAlwaysShare MockSharingPreference = "always_share"
	SharingAskFirst    MockSharingPreference = "ask_first"
	SharingNever       MockSharingPreference = "never"
)

func (p MockSharingPreference) IsValid() bool {
	return p == SharingAlwaysShare || p == SharingAskFirst || p == SharingNever
}

// ParseSharingPreference converts a configured name into a preference.
func ParseSharingPreference(name string) (MockSharingPreference, error) {
	p := MockSharingPreference(name)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown sharing preference %q", name))
	}
	return p, nil
}

// MockSettings is a read-only description of the mock user's settings.
// Scenario outcomes do not consult it.
type MockSettings struct {
	DateOfBirth            *time.Time
	SharingPreference      MockSharingPreference
	ActiveParentalControls ParentalControls
}

// Age returns the age at now, or false when no birth date is set.
func (s MockSettings) Age(now time.Time) (int, bool) {
	if s.DateOfBirth == nil {
		return 0, false
	}
	return domain.AgeOn(*s.DateOfBirth, now), true
}
