package models

// Declaration records who attested to a shared age range.
type Declaration string

const (
	// DeclarationSelf: the person declared the range themselves.
	DeclarationSelf Declaration = "self_declared"
	// DeclarationGuardian: a parent or guardian declared the range.
	DeclarationGuardian Declaration = "guardian_declared"
)

// IsValid checks if the declaration is one of the supported enum values.
// The zero value means "not declared" and is not valid.
func (d Declaration) IsValid() bool {
	return d == DeclarationSelf || d == DeclarationGuardian
}

// AgeRange is the interval a person shared in response to a request.
//
// A nil LowerBound means the effective lower bound is 0; a nil UpperBound
// means there is no upper bound. When both are set, LowerBound <= UpperBound
// is the producer's responsibility and is not checked here.
type AgeRange struct {
	LowerBound *int
	UpperBound *int

	// Declaration is empty unless the range was attested.
	Declaration Declaration

	// ActiveParentalControls is empty when the person is an adult or a minor
	// without controls enabled.
	ActiveParentalControls ParentalControls
}

// Bound returns a pointer to v, for filling LowerBound and UpperBound.
func Bound(v int) *int {
	return &v
}

// EffectiveLowerBound returns LowerBound, or 0 when absent.
func (r AgeRange) EffectiveLowerBound() int {
	if r.LowerBound == nil {
		return 0
	}
	return *r.LowerBound
}

func (r AgeRange) IsUpperBounded() bool {
	return r.UpperBound != nil
}

// MeetsGate reports whether everyone in the range is at least gate years old.
func (r AgeRange) MeetsGate(gate int) bool {
	return r.EffectiveLowerBound() >= gate
}
