package projections

import (
	"context"

	"companion/internal/domain/activity"
	"companion/internal/domain/enrollment"
	"companion/internal/domain/session"
)

// ActivityAPI interface for activity list queries.
type ActivityAPI interface {
	ListActivities(ctx context.Context) ([]activity.Activity, error)
	GetActivity(ctx context.Context, id string) (activity.Activity, error)
}

// AttendeeAPI interface for attendance queries.
type AttendeeAPI interface {
	ListAttendees(ctx context.Context, activityID string) ([]session.User, error)
}

// EnrollmentAPI interface for enrollment list queries.
type EnrollmentAPI interface {
	ListEnrollmentsByUser(ctx context.Context, userID string) ([]enrollment.Enrollment, error)
}
