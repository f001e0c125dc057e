// Package mock provides a deterministic, scenario-driven age range provider
// for development and tests.
//
// The provider answers every request from its current scenario. Serving a
// request never changes the scenario; only SetScenario and ResetMockData do.
package mock

import (
	"context"
	"sync"
	"time"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers"
)

// Provider is the mock backend. The zero value is not usable; call New.
type Provider struct {
	mu        sync.Mutex
	scenario  Scenario
	calls     int
	lastGates *models.AgeGates
	settings  models.MockSettings

	latency time.Duration
}

// Option configures the Provider.
type Option func(*Provider)

// WithScenario sets the initial scenario. Invalid scenarios are ignored.
func WithScenario(s Scenario) Option {
	return func(p *Provider) {
		if s.IsValid() {
			p.scenario = s
		}
	}
}

// WithLatency delays every answer by d, simulating a person reading the prompt.
func WithLatency(d time.Duration) Option {
	return func(p *Provider) {
		p.latency = d
	}
}

// WithProfile applies a loaded profile: its scenario becomes the initial one
// and its settings are exposed through Settings.
func WithProfile(profile *Profile) Option {
	return func(p *Provider) {
		if profile == nil {
			return
		}
		if profile.Scenario.IsValid() {
			p.scenario = profile.Scenario
		}
		p.settings = profile.Settings
	}
}

// New creates a mock provider in the default scenario.
func New(opts ...Option) *Provider {
	p := &Provider{scenario: DefaultScenario}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name identifies the backend in logs and metrics.
func (p *Provider) Name() string {
	return "mock"
}

// RequestAgeRange answers from the scenario active at call time. The gates and
// anchor are accepted but do not influence the outcome.
func (p *Provider) RequestAgeRange(ctx context.Context, gates models.AgeGates, _ providers.Anchor) (models.Response, error) {
	if err := ctx.Err(); err != nil {
		return models.Response{}, err
	}

	p.mu.Lock()
	scenario := p.scenario
	p.calls++
	recorded := gates
	p.lastGates = &recorded
	p.mu.Unlock()

	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.Response{}, ctx.Err()
		}
	}

	return outcomes[scenario].resolve()
}

// ResetMockData returns to DefaultScenario and forgets recorded calls,
// whatever the current state. Settings are left alone.
func (p *Provider) ResetMockData() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scenario = DefaultScenario
	p.calls = 0
	p.lastGates = nil
}

// SetScenario switches the scenario used by subsequent requests.
func (p *Provider) SetScenario(s Scenario) error {
	if _, err := ParseScenario(string(s)); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scenario = s
	return nil
}

func (p *Provider) Scenario() Scenario {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scenario
}

// CallCount returns how many requests were served since the last reset.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// LastGates returns the gates of the most recent request since the last reset.
func (p *Provider) LastGates() (models.AgeGates, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastGates == nil {
		return models.AgeGates{}, false
	}
	return *p.lastGates, true
}

// Settings returns the descriptive settings snapshot from the profile.
func (p *Provider) Settings() models.MockSettings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

var _ providers.Provider = (*Provider)(nil)
