package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite covers the primitives used by scenario parsing and
// profile loading. Invariant: a code, once attached, survives further wrapping.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorString() {
	s.Run("message wins over code", func() {
		err := &Error{Code: CodeInvalidInput, Message: "unknown scenario \"foo\""}
		s.Equal("unknown scenario \"foo\"", err.Error())
	})

	s.Run("falls back to code", func() {
		err := &Error{Code: CodeNotFound}
		s.Equal("not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatchesByCode() {
	s.Run("same code different message", func() {
		a := New(CodeInvalidInput, "bad gate")
		b := New(CodeInvalidInput, "bad preference")
		s.True(errors.Is(a, b))
	})

	s.Run("different codes", func() {
		s.False(errors.Is(New(CodeInvalidInput, "x"), New(CodeInternal, "x")))
	})

	s.Run("plain errors never match", func() {
		s.False(errors.Is(New(CodeNotFound, "x"), errors.New("x")))
	})

	s.Run("found through fmt wrapping", func() {
		err := fmt.Errorf("load profile: %w", New(CodeNotFound, "profile missing"))
		s.True(errors.Is(err, &Error{Code: CodeNotFound}))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("keeps the inner code", func() {
		inner := New(CodeInvalidInput, "unknown scenario")
		wrapped := Wrap(inner, CodeInternal, "apply profile")
		s.True(HasCode(wrapped, CodeInvalidInput))
		s.Equal("apply profile", wrapped.Error())
	})

	s.Run("applies the given code to foreign errors", func() {
		root := errors.New("permission denied")
		wrapped := Wrap(root, CodeInternal, "read profile")
		s.True(HasCode(wrapped, CodeInternal))
		s.ErrorIs(wrapped, root)
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.False(HasCode(nil, CodeInternal))
	s.False(HasCode(errors.New("plain"), CodeInternal))
	s.True(HasCode(New(CodeNotFound, "gone"), CodeNotFound))
}
