package projections

import (
	"context"
	"errors"

	"companion/internal/application/listutil"
	"companion/internal/domain/activity"
	"companion/internal/domain/enrollment"
)

// GetMyEnrollmentsQuery carries query parameters.
type GetMyEnrollmentsQuery struct {
	UserID string
}

// EnrolledActivity pairs an enrollment record with its activity.
type EnrolledActivity struct {
	Enrollment enrollment.Enrollment
	Activity   activity.Activity
}

// GetMyEnrollmentsResult carries the query result.
type GetMyEnrollmentsResult struct {
	Items []EnrolledActivity
}

// GetMyEnrollmentsDeps holds dependencies for GetMyEnrollments.
type GetMyEnrollmentsDeps struct {
	Enrollments EnrollmentAPI
	Activities  ActivityAPI
}

// QueryGetMyEnrollments builds the "my agenda" view: the user's
// enrollments joined with their activities, ordered by start time.
// PRE: query.UserID is non-empty
// POST: Returns items for every enrollment whose activity still exists;
// enrollments pointing at deleted activities are skipped
func QueryGetMyEnrollments(ctx context.Context, query GetMyEnrollmentsQuery, deps GetMyEnrollmentsDeps) (GetMyEnrollmentsResult, error) {
	records, err := deps.Enrollments.ListEnrollmentsByUser(ctx, query.UserID)
	if err != nil {
		return GetMyEnrollmentsResult{}, err
	}

	var items []EnrolledActivity
	for _, rec := range records {
		act, err := deps.Activities.GetActivity(ctx, rec.ActivityID)
		if errors.Is(err, activity.ErrNotFound) {
			continue
		}
		if err != nil {
			return GetMyEnrollmentsResult{}, err
		}
		items = append(items, EnrolledActivity{Enrollment: rec, Activity: act})
	}
	if err := ctx.Err(); err != nil {
		return GetMyEnrollmentsResult{}, err
	}

	listutil.SortBy(items, func(a, b EnrolledActivity) bool {
		return a.Activity.Date.Before(b.Activity.Date)
	})

	return GetMyEnrollmentsResult{Items: items}, nil
}
