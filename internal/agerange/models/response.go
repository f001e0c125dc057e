package models

// ResponseKind tags which variant a Response holds.
type ResponseKind string

const (
	ResponseDeclinedSharing ResponseKind = "declined_sharing"
	ResponseSharing         ResponseKind = "sharing"
)

// Response is the outcome of a successful request: the person either declined
// to share or shared an AgeRange. Build one with Declined or Sharing; the zero
// value is only ever returned next to a non-nil error.
type Response struct {
	kind     ResponseKind
	ageRange AgeRange
}

// Declined returns the response for a person who chose not to share.
func Declined() Response {
	return Response{kind: ResponseDeclinedSharing}
}

// Sharing returns the response carrying a shared range.
func Sharing(r AgeRange) Response {
	return Response{kind: ResponseSharing, ageRange: r}
}

func (r Response) Kind() ResponseKind {
	return r.kind
}

func (r Response) IsDeclined() bool {
	return r.kind == ResponseDeclinedSharing
}

// AgeRange returns the shared range; ok is false for any other variant.
func (r Response) AgeRange() (AgeRange, bool) {
	if r.kind != ResponseSharing {
		return AgeRange{}, false
	}
	return r.ageRange, true
}
