package scan

import "errors"

// Domain errors
var (
	ErrEmptyCredential   = errors.New("scanned credential is empty")
	ErrMissingActivityID = errors.New("scan target activity id is required")
)

// GenericFailureMessage is shown when the backend rejects a check-in
// without a usable message of its own.
const GenericFailureMessage = "could not record the check-in, please scan again"

// Event is one decoded credential aimed at one activity. It has no
// persisted identity; it exists only for the duration of a single
// check-in attempt.
type Event struct {
	Credential string // opaque, equals the scanned user's QRCode value
	ActivityID string
}

// Validate checks the event carries enough to attempt a check-in.
// The credential is opaque: no shape check beyond non-emptiness.
// PRE: Event was built from a decoder callback
// POST: Returns nil if valid, error otherwise
func (e Event) Validate() error {
	if e.Credential == "" {
		return ErrEmptyCredential
	}
	if e.ActivityID == "" {
		return ErrMissingActivityID
	}
	return nil
}

// Code classifies the outcome of one check-in attempt.
type Code string

const (
	CodeSuccess          Code = "success"
	CodeActivityNotFound Code = "activity_not_found"
	CodeRequestFailed    Code = "request_failed"
)

// Result is consumed immediately by the presentation layer to pick a
// feedback overlay. It is never persisted.
type Result struct {
	Code    Code
	Message string
}

// Success builds the successful check-in result.
func Success() Result {
	return Result{Code: CodeSuccess}
}

// ActivityNotFound builds the result for a target activity the backend
// does not know. This is an expected negative outcome, not an error.
func ActivityNotFound() Result {
	return Result{Code: CodeActivityNotFound}
}

// RequestFailed builds the transient-failure result. The server message
// is surfaced verbatim when present; otherwise a generic fallback is
// used so no failure path ends without a user-visible message.
func RequestFailed(message string) Result {
	if message == "" {
		message = GenericFailureMessage
	}
	return Result{Code: CodeRequestFailed, Message: message}
}
