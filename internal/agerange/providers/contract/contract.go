package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers"
)

// ContractTest is a provider-specific expectation run after the shared checks.
type ContractTest struct {
	Name   string
	Gates  models.AgeGates
	Anchor providers.Anchor

	// Prepare puts a fresh provider into the state the test needs.
	Prepare func(p providers.Provider)

	// Validate inspects the outcome of a single RequestAgeRange call.
	Validate func(resp models.Response, err error) error
}

// ContractSuite checks that a Provider honours the behaviour the service
// relies on. New must return an independent provider on every call.
type ContractSuite struct {
	Name   string
	New    func() providers.Provider
	Anchor providers.Anchor
	Tests  []ContractTest
}

// Run executes the shared contract checks followed by the suite's own tests.
func (s *ContractSuite) Run(t *testing.T) {
	t.Run(s.Name+"/reset before first request", func(t *testing.T) {
		p := s.New()
		p.ResetMockData()
		p.ResetMockData()
	})

	t.Run(s.Name+"/outcome is exactly one of response or error", func(t *testing.T) {
		p := s.New()
		resp, err := p.RequestAgeRange(context.Background(), models.AgeGates{Threshold1: 13}, s.Anchor)
		if err := CheckOutcome(resp, err); err != nil {
			t.Error(err)
		}
	})

	t.Run(s.Name+"/reset is idempotent", func(t *testing.T) {
		once := s.New()
		once.ResetMockData()
		twice := s.New()
		twice.ResetMockData()
		twice.ResetMockData()

		gates := models.AgeGates{Threshold1: 18}
		r1, err1 := once.RequestAgeRange(context.Background(), gates, s.Anchor)
		r2, err2 := twice.RequestAgeRange(context.Background(), gates, s.Anchor)
		if r1.Kind() != r2.Kind() {
			t.Errorf("response kind after one reset %q, after two %q", r1.Kind(), r2.Kind())
		}
		k1, _ := providers.KindOf(err1)
		k2, _ := providers.KindOf(err2)
		if k1 != k2 {
			t.Errorf("error kind after one reset %q, after two %q", k1, k2)
		}
	})

	t.Run(s.Name+"/cancelled context", func(t *testing.T) {
		p := s.New()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		resp, err := p.RequestAgeRange(ctx, models.AgeGates{Threshold1: 13}, s.Anchor)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if resp.Kind() != "" {
			t.Errorf("expected no response on cancellation, got %q", resp.Kind())
		}
	})

	for _, test := range s.Tests {
		t.Run(s.Name+"/"+test.Name, func(t *testing.T) {
			p := s.New()
			if test.Prepare != nil {
				test.Prepare(p)
			}
			anchor := test.Anchor
			if anchor == nil {
				anchor = s.Anchor
			}

			resp, err := p.RequestAgeRange(context.Background(), test.Gates, anchor)
			if outcomeErr := CheckOutcome(resp, err); outcomeErr != nil {
				t.Fatal(outcomeErr)
			}
			if test.Validate != nil {
				if vErr := test.Validate(resp, err); vErr != nil {
					t.Errorf("custom validation failed: %v", vErr)
				}
			}
		})
	}
}

// CheckOutcome verifies that a call produced either a well-formed response or
// a classified error, never both and never neither.
func CheckOutcome(resp models.Response, err error) error {
	if err != nil {
		if resp.Kind() != "" {
			return fmt.Errorf("got response %q alongside error %v", resp.Kind(), err)
		}
		if _, ok := providers.KindOf(err); !ok && !isContextErr(err) {
			return fmt.Errorf("unclassified error: %v", err)
		}
		return nil
	}

	switch resp.Kind() {
	case models.ResponseDeclinedSharing:
		if _, ok := resp.AgeRange(); ok {
			return errors.New("declined response carries an age range")
		}
	case models.ResponseSharing:
		if _, ok := resp.AgeRange(); !ok {
			return errors.New("sharing response without an age range")
		}
	default:
		return fmt.Errorf("response has no variant: %q", resp.Kind())
	}
	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
