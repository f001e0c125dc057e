package testutil

import (
	"agerange/internal/agerange/models"
)

// Common gate sets used across tests.
var (
	GatesSingle = models.AgeGates{Threshold1: 13}
	GatesTiered = models.AgeGates{Threshold1: 13, Threshold2: models.Gate(15), Threshold3: models.Gate(18)}
)

// Anchor stands in for a window or view controller in tests.
type Anchor struct {
	Name string
}

// NewAnchor returns a non-nil presentation anchor.
func NewAnchor() Anchor {
	return Anchor{Name: "test-window"}
}

// AgeRangeBuilder provides a fluent interface for building test age ranges.
type AgeRangeBuilder struct {
	r models.AgeRange
}

// NewAgeRangeBuilder starts from an unbounded, undeclared range with no controls.
func NewAgeRangeBuilder() *AgeRangeBuilder {
	return &AgeRangeBuilder{}
}

func (b *AgeRangeBuilder) Between(lower, upper int) *AgeRangeBuilder {
	b.r.LowerBound = models.Bound(lower)
	b.r.UpperBound = models.Bound(upper)
	return b
}

func (b *AgeRangeBuilder) AtLeast(lower int) *AgeRangeBuilder {
	b.r.LowerBound = models.Bound(lower)
	b.r.UpperBound = nil
	return b
}

func (b *AgeRangeBuilder) DeclaredBy(d models.Declaration) *AgeRangeBuilder {
	b.r.Declaration = d
	return b
}

func (b *AgeRangeBuilder) WithControls(controls ...models.ParentalControls) *AgeRangeBuilder {
	b.r.ActiveParentalControls = b.r.ActiveParentalControls.Union(controls...)
	return b
}

// Sharing wraps the built range in a sharing response.
func (b *AgeRangeBuilder) Sharing() models.Response {
	return models.Sharing(b.r)
}
