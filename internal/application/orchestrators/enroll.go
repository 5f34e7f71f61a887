package orchestrators

import (
	"context"
	"log/slog"

	"companion/internal/domain/enrollment"
)

// EnrollInput carries input for the enroll orchestrator.
type EnrollInput struct {
	UserID     string
	ActivityID string
}

// EnrollDeps holds dependencies for Enroll.
type EnrollDeps struct {
	Enrollments EnrollmentAPI
}

// ExecuteEnroll reserves the user's spot in the activity.
//
// Nothing is assumed optimistically: the screen shows a loading state
// while this runs and only flips to enrolled on success. A rejection
// (including capacity-full, which the backend reports as a normal
// rejection) returns StatusNotEnrolled with the server's reason
// untouched, so the screen reverts and shows it verbatim.
//
// Concurrency contract: the caller must not invoke enroll/unenroll for
// the same pair concurrently — the screen disables its trigger while a
// request is in flight. This orchestrator does not serialize calls.
func ExecuteEnroll(ctx context.Context, input EnrollInput, deps EnrollDeps) (enrollment.Status, error) {
	rec, err := deps.Enrollments.CreateEnrollment(ctx, input.UserID, input.ActivityID)
	if err != nil {
		slog.Info("enrollment_event", "event", "enroll_rejected",
			"user_id", input.UserID, "activity_id", input.ActivityID, "reason", err.Error())
		return enrollment.StatusNotEnrolled, err
	}

	slog.Info("enrollment_event", "event", "enrolled",
		"user_id", input.UserID, "activity_id", input.ActivityID, "enrollment_id", rec.ID)
	return enrollment.StatusEnrolled, nil
}
