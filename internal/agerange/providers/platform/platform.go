// Package platform adapts the vendor's age range consent prompt to the
// providers.Provider contract.
//
// The vendor binding lives outside this module. It calls Register from an
// init function on hosts that expose the capability; on every other host
// Available reports false and the service falls back to the mock.
package platform

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"golang.org/x/sync/semaphore"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers"
)

// Prompter presents the system consent prompt anchored to anchor and waits
// for the person to answer. It is supplied by the vendor binding.
type Prompter interface {
	PromptAgeRange(ctx context.Context, gates models.AgeGates, anchor providers.Anchor) (models.Response, error)
}

var (
	registryMu sync.RWMutex
	registered Prompter
)

// Register installs the host's prompter. A later call replaces the earlier
// one; passing nil removes it.
func Register(p Prompter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = p
}

// Available reports whether a prompter is registered on this host.
func Available() bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registered != nil
}

func current() Prompter {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registered
}

// Provider forwards requests to a Prompter. Only one consent prompt is on
// screen at a time; later callers wait for the earlier one to be answered.
type Provider struct {
	prompter Prompter
	inFlight *semaphore.Weighted
}

// Option configures the Provider.
type Option func(*Provider)

// WithPrompter binds the provider to p instead of the registered prompter.
func WithPrompter(p Prompter) Option {
	return func(pr *Provider) {
		pr.prompter = p
	}
}

// New creates a platform provider bound to the prompter registered at call
// time, unless WithPrompter overrides it.
func New(opts ...Option) *Provider {
	p := &Provider{
		prompter: current(),
		inFlight: semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name identifies the backend in logs and metrics.
func (p *Provider) Name() string {
	return "platform"
}

// RequestAgeRange presents the consent prompt and returns the person's answer.
func (p *Provider) RequestAgeRange(ctx context.Context, gates models.AgeGates, anchor providers.Anchor) (models.Response, error) {
	if isNilAnchor(anchor) {
		return models.Response{}, providers.ErrInvalidRequest
	}
	if p.prompter == nil {
		return models.Response{}, providers.ErrNotAvailable
	}

	if err := p.inFlight.Acquire(ctx, 1); err != nil {
		return models.Response{}, err
	}
	defer p.inFlight.Release(1)

	resp, err := p.prompter.PromptAgeRange(ctx, gates, anchor)
	if err != nil {
		return models.Response{}, classify(err)
	}
	if resp.Kind() == "" {
		return models.Response{}, providers.NewError(providers.KindUnknown, errors.New("prompter returned an empty response"))
	}
	return resp, nil
}

// isNilAnchor also catches typed nils, such as a nil *Window stored in the
// interface.
func isNilAnchor(anchor providers.Anchor) bool {
	if anchor == nil {
		return true
	}
	v := reflect.ValueOf(anchor)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// ResetMockData is a no-op: the platform holds no mock state.
func (p *Provider) ResetMockData() {}

// classify keeps already-classified and context errors as they are and files
// everything else under KindUnknown, with the original as the cause.
func classify(err error) error {
	if _, ok := providers.KindOf(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return providers.NewError(providers.KindUnknown, err)
}

var _ providers.Provider = (*Provider)(nil)
