package projections

import (
	"context"

	"companion/internal/application/listutil"
	"companion/internal/domain/activity"
)

// GetActivitiesQuery carries query parameters.
type GetActivitiesQuery struct {
	Category string
}

// GetActivitiesResult carries the query result.
type GetActivitiesResult struct {
	Activities []activity.Activity
}

// GetActivitiesDeps holds dependencies for GetActivities.
type GetActivitiesDeps struct {
	API ActivityAPI
}

// QueryGetActivities fetches the activity list for the browsing screen.
// The list is always fetched fresh from the backend; no local cache.
// PRE: deps.API is non-nil
// POST: Returns activities filtered by category, ordered by start time
// INVARIANT: A cancelled ctx yields ctx.Err() and a discarded response
func QueryGetActivities(ctx context.Context, query GetActivitiesQuery, deps GetActivitiesDeps) (GetActivitiesResult, error) {
	activities, err := deps.API.ListActivities(ctx)
	if err != nil {
		return GetActivitiesResult{}, err
	}
	// The screen may have been left while the fetch was in flight; a
	// stale response must not reach it.
	if err := ctx.Err(); err != nil {
		return GetActivitiesResult{}, err
	}

	if query.Category != "" {
		activities = listutil.Filter(activities, func(a activity.Activity) bool {
			return a.Category == query.Category
		})
	}
	listutil.SortBy(activities, func(a, b activity.Activity) bool {
		return a.Date.Before(b.Date)
	})

	return GetActivitiesResult{Activities: activities}, nil
}
