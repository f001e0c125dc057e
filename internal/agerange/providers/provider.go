package providers

import (
	"context"

	"agerange/internal/agerange/models"
)

// Anchor is the UI surface a real backend presents its consent prompt from,
// such as a window or view controller. It is opaque to this package and to
// the service; only the backend that knows the concrete type inspects it.
// The caller must keep it alive until RequestAgeRange returns.
type Anchor any

// Provider is the capability every age range backend implements.
//
// Implementations include the platform shim that talks to the vendor's consent
// UI and the scenario-driven mock used in development and tests. The service
// depends only on this interface.
type Provider interface {
	// RequestAgeRange blocks until the person answers the prompt (or the mock
	// resolves) and returns the outcome. Negative outcomes are reported as an
	// *Error with one of the ErrorKind values. If ctx ends first the context
	// error is returned instead. Gates are hints and are never validated.
	RequestAgeRange(ctx context.Context, gates models.AgeGates, anchor Anchor) (models.Response, error)

	// ResetMockData restores default mock state. It is idempotent, safe to call
	// before any request, and a no-op for non-mock providers.
	ResetMockData()
}
