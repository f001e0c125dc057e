package providers

import (
	"errors"
	"fmt"
)

// ErrorKind is the failure taxonomy shared by every provider.
type ErrorKind string

const (
	// KindNotAvailable: the person declined or the capability is absent.
	// Callers should treat it as "no data", not as a fault.
	KindNotAvailable ErrorKind = "not_available"

	// KindInvalidRequest: the call itself was malformed, for example no
	// presentable anchor. This is a caller bug.
	KindInvalidRequest ErrorKind = "invalid_request"

	// KindUnknown: any backend failure that could not be classified.
	KindUnknown ErrorKind = "unknown"
)

// IsValid checks if the kind is one of the supported enum values.
func (k ErrorKind) IsValid() bool {
	return k == KindNotAvailable || k == KindInvalidRequest || k == KindUnknown
}

// Error is a classified provider failure. Two errors are equal under errors.Is
// when their kinds match; the wrapped cause does not take part in equality.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("age range %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("age range %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks. Providers may return these directly.
var (
	ErrNotAvailable   = &Error{Kind: KindNotAvailable}
	ErrInvalidRequest = &Error{Kind: KindInvalidRequest}
	ErrUnknown        = &Error{Kind: KindUnknown}
)

// NewError classifies cause under kind. cause may be nil.
func NewError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// KindOf extracts the kind from err. ok is false for nil and for errors that
// were never classified, such as context cancellation.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
