package projections

import (
	"context"

	"companion/internal/application/listutil"
	"companion/internal/domain/session"
)

// GetAttendeesQuery carries query parameters. Zero Page/PerPage get the
// listutil defaults.
type GetAttendeesQuery struct {
	ActivityID string
	Page       int
	PerPage    int
}

// GetAttendeesResult carries one page of the query result.
type GetAttendeesResult struct {
	Attendees []session.User
	Total     int
	Page      listutil.PageInfo
}

// GetAttendeesDeps holds dependencies for GetAttendees.
type GetAttendeesDeps struct {
	API AttendeeAPI
}

// QueryGetAttendees fetches who has checked in to an activity, for the
// organizer's attendance screen. Large activities page the list; the
// whole list is still fetched fresh each time (no attendance cache).
// PRE: query.ActivityID is non-empty
// POST: Returns the requested page of attendees ordered by name, with
// the page clamped to the valid range
func QueryGetAttendees(ctx context.Context, query GetAttendeesQuery, deps GetAttendeesDeps) (GetAttendeesResult, error) {
	attendees, err := deps.API.ListAttendees(ctx, query.ActivityID)
	if err != nil {
		return GetAttendeesResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return GetAttendeesResult{}, err
	}

	listutil.SortBy(attendees, func(a, b session.User) bool {
		return a.Name < b.Name
	})

	page := listutil.NewPageInfo(query.Page, query.PerPage, len(attendees))
	return GetAttendeesResult{
		Attendees: listutil.Window(attendees, page),
		Total:     len(attendees),
		Page:      page,
	}, nil
}
