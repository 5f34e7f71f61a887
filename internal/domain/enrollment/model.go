package enrollment

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrMissingUserID     = errors.New("enrollment user id is required")
	ErrMissingActivityID = errors.New("enrollment activity id is required")

	// ErrNotFound is the expected outcome of looking up a pair that has
	// no enrollment record. It is a normal state, not a failure, and
	// must never be conflated with a transient lookup error.
	ErrNotFound = errors.New("enrollment not found")
)

// Status is the client-side view of a (user, activity) enrollment.
type Status string

const (
	// StatusUnknown means the relationship could not be determined
	// (lookup still loading or failed). Screens must not render it as
	// "not enrolled".
	StatusUnknown     Status = "unknown"
	StatusEnrolled    Status = "enrolled"
	StatusNotEnrolled Status = "not_enrolled"
)

// Enrollment links a user to an activity. Existence of the record IS
// the enrollment; the backend guarantees at most one record per
// (user, activity) pair. The client never caches this relationship
// across sessions — it is fetched on demand.
type Enrollment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ActivityID string    `json:"activityId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks required fields for an Enrollment.
// PRE: Enrollment struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Enrollment) Validate() error {
	if e.UserID == "" {
		return ErrMissingUserID
	}
	if e.ActivityID == "" {
		return ErrMissingActivityID
	}
	return nil
}
