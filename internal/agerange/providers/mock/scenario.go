package mock

import (
	"fmt"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers"
	dErrors "agerange/pkg/domain-errors"
)

// Scenario selects what the mock answers on the next request.
type Scenario string

const (
	ScenarioDeclinedSharing     Scenario = "declined_sharing"
	ScenarioSharingChild        Scenario = "sharing_child"
	ScenarioSharingTeen         Scenario = "sharing_teen"
	ScenarioSharingAdult        Scenario = "sharing_adult"
	ScenarioErrorNotAvailable   Scenario = "error_not_available"
	ScenarioErrorInvalidRequest Scenario = "error_invalid_request"
	ScenarioErrorUnknown        Scenario = "error_unknown"
)

// DefaultScenario is active after construction and after every reset.
const DefaultScenario = ScenarioDeclinedSharing

// outcome is one row of the scenario table.
type outcome struct {
	sharing     bool
	lower       int
	upper       int
	openEnded   bool
	declaration models.Declaration
	controls    models.ParentalControls
	errKind     providers.ErrorKind
}

// outcomes is the single source of truth for scenario behaviour.
var outcomes = map[Scenario]outcome{
	ScenarioDeclinedSharing: {},
	ScenarioSharingChild: {
		sharing:     true,
		lower:       8,
		upper:       12,
		declaration: models.DeclarationGuardian,
		controls:    models.ContentRestrictions,
	},
	ScenarioSharingTeen: {
		sharing:     true,
		lower:       14,
		upper:       17,
		declaration: models.DeclarationSelf,
	},
	ScenarioSharingAdult: {
		sharing:     true,
		lower:       18,
		openEnded:   true,
		declaration: models.DeclarationSelf,
	},
	ScenarioErrorNotAvailable:   {errKind: providers.KindNotAvailable},
	ScenarioErrorInvalidRequest: {errKind: providers.KindInvalidRequest},
	ScenarioErrorUnknown:        {errKind: providers.KindUnknown},
}

// scenarioOrder fixes the listing order for Scenarios.
var scenarioOrder = []Scenario{
	ScenarioDeclinedSharing,
	ScenarioSharingChild,
	ScenarioSharingTeen,
	ScenarioSharingAdult,
	ScenarioErrorNotAvailable,
	ScenarioErrorInvalidRequest,
	ScenarioErrorUnknown,
}

// resolve builds a fresh response or error; nothing is shared between calls.
func (o outcome) resolve() (models.Response, error) {
	if o.errKind != "" {
		return models.Response{}, providers.NewError(o.errKind, nil)
	}
	if !o.sharing {
		return models.Declined(), nil
	}
	r := models.AgeRange{
		LowerBound:             models.Bound(o.lower),
		Declaration:            o.declaration,
		ActiveParentalControls: o.controls,
	}
	if !o.openEnded {
		r.UpperBound = models.Bound(o.upper)
	}
	return models.Sharing(r), nil
}

// IsValid checks if the scenario is one of the supported enum values.
func (s Scenario) IsValid() bool {
	_, ok := outcomes[s]
	return ok
}

// Scenarios lists every scenario in a stable order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarioOrder))
	copy(out, scenarioOrder)
	return out
}

// Outcome returns what s produces, without touching any provider state.
func Outcome(s Scenario) (models.Response, error) {
	o, ok := outcomes[s]
	if !ok {
		return models.Response{}, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown scenario %q", s))
	}
	return o.resolve()
}

// ParseScenario converts a configured name into a Scenario.
func ParseScenario(name string) (Scenario, error) {
	s := Scenario(name)
	if !s.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown scenario %q", name))
	}
	return s, nil
}
