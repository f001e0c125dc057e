package models

import (
	"encoding/json"
	"fmt"
	"strings"

	dErrors "agerange/pkg/domain-errors"
)

// ParentalControls is the set of restrictions active alongside a shared age
// range. Flags are independent and combine by union.
type ParentalControls uint8

const (
	// ParentalControlsNone means no controls are active.
	ParentalControlsNone ParentalControls = 0

	// ContentRestrictions: access to content is limited by age rating.
	ContentRestrictions ParentalControls = 1 << 0
	// ScreenTimeLimits: the system enforces screen time limits.
	ScreenTimeLimits ParentalControls = 1 << 1
	// CommunicationLimits: communication with the person is limited.
	CommunicationLimits ParentalControls = 1 << 2
)

// controlNames fixes the rendering order of the flags.
var controlNames = []struct {
	flag ParentalControls
	name string
}{
	{ContentRestrictions, "content_restrictions"},
	{ScreenTimeLimits, "screen_time_limits"},
	{CommunicationLimits, "communication_limits"},
}

// Union returns the set containing every flag of p and others.
func (p ParentalControls) Union(others ...ParentalControls) ParentalControls {
	for _, o := range others {
		p |= o
	}
	return p
}

// Remove returns p without the given flags.
func (p ParentalControls) Remove(flags ParentalControls) ParentalControls {
	return p &^ flags
}

// Contains reports whether every flag in flags is set in p.
func (p ParentalControls) Contains(flags ParentalControls) bool {
	return p&flags == flags
}

func (p ParentalControls) IsEmpty() bool {
	return p == ParentalControlsNone
}

// Names lists the active flags in a stable order. Unknown bits are ignored.
func (p ParentalControls) Names() []string {
	names := make([]string, 0, len(controlNames))
	for _, c := range controlNames {
		if p.Contains(c.flag) {
			names = append(names, c.name)
		}
	}
	return names
}

// String renders the active flags joined by ", ", or "none" for the empty set.
func (p ParentalControls) String() string {
	names := p.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// MarshalJSON encodes the set as a list of flag names.
func (p ParentalControls) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Names())
}

// ParseParentalControls builds a set from flag names. "none" contributes
// nothing; any other unrecognised name is rejected.
func ParseParentalControls(names []string) (ParentalControls, error) {
	var set ParentalControls
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "none" {
			continue
		}
		flag, ok := lookupControl(name)
		if !ok {
			return ParentalControlsNone, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown parental control %q", name))
		}
		set = set.Union(flag)
	}
	return set, nil
}

func lookupControl(name string) (ParentalControls, bool) {
	for _, c := range controlNames {
		if c.name == name {
			return c.flag, true
		}
	}
	return ParentalControlsNone, false
}
