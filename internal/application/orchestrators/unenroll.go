package orchestrators

import (
	"context"
	"log/slog"

	"companion/internal/domain/enrollment"
)

// UnenrollInput carries input for the unenroll orchestrator.
type UnenrollInput struct {
	UserID     string
	ActivityID string
}

// UnenrollDeps holds dependencies for Unenroll.
type UnenrollDeps struct {
	Enrollments EnrollmentAPI
}

// ExecuteUnenroll gives the spot back. On failure the view state stays
// Enrolled (no optimistic removal) and the error is surfaced.
func ExecuteUnenroll(ctx context.Context, input UnenrollInput, deps UnenrollDeps) (enrollment.Status, error) {
	if err := deps.Enrollments.DeleteEnrollment(ctx, input.UserID, input.ActivityID); err != nil {
		slog.Info("enrollment_event", "event", "unenroll_failed",
			"user_id", input.UserID, "activity_id", input.ActivityID, "reason", err.Error())
		return enrollment.StatusEnrolled, err
	}

	slog.Info("enrollment_event", "event", "unenrolled",
		"user_id", input.UserID, "activity_id", input.ActivityID)
	return enrollment.StatusNotEnrolled, nil
}
