package orchestrators

import (
	"context"
	"errors"
	"fmt"

	"companion/internal/domain/enrollment"
)

// EnrollmentAPI defines the enrollment endpoints the coordinators use.
// GetEnrollment returns enrollment.ErrNotFound when no record exists.
type EnrollmentAPI interface {
	GetEnrollment(ctx context.Context, userID, activityID string) (enrollment.Enrollment, error)
	CreateEnrollment(ctx context.Context, userID, activityID string) (enrollment.Enrollment, error)
	DeleteEnrollment(ctx context.Context, userID, activityID string) error
}

// CheckEnrollmentInput carries the (user, activity) pair to look up.
type CheckEnrollmentInput struct {
	UserID     string
	ActivityID string
}

// CheckEnrollmentDeps holds dependencies for CheckEnrollment.
type CheckEnrollmentDeps struct {
	Enrollments EnrollmentAPI
}

// ErrEnrollmentUnavailable marks a transient lookup failure. It must
// never be rendered as "not enrolled" — a network error and an absent
// record are different answers.
var ErrEnrollmentUnavailable = errors.New("could not determine enrollment status")

// ExecuteCheckEnrollment answers "is this user enrolled in this activity?".
// POST: A missing record yields (StatusNotEnrolled, nil); any other
// lookup failure yields (StatusUnknown, ErrEnrollmentUnavailable)
func ExecuteCheckEnrollment(ctx context.Context, input CheckEnrollmentInput, deps CheckEnrollmentDeps) (enrollment.Status, error) {
	_, err := deps.Enrollments.GetEnrollment(ctx, input.UserID, input.ActivityID)
	if err != nil {
		if errors.Is(err, enrollment.ErrNotFound) {
			return enrollment.StatusNotEnrolled, nil
		}
		return enrollment.StatusUnknown, fmt.Errorf("%w: %w", ErrEnrollmentUnavailable, err)
	}
	return enrollment.StatusEnrolled, nil
}
