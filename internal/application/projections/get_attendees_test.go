package projections

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"companion/internal/domain/session"
)

// TestQueryGetAttendees_SortsByName verifies name ordering and total.
func TestQueryGetAttendees_SortsByName(t *testing.T) {
	api := &mockAPI{attendees: []session.User{
		{ID: "user-002", Name: "Carla"},
		{ID: "user-001", Name: "Ana"},
		{ID: "user-003", Name: "Bruno"},
	}}

	res, err := QueryGetAttendees(context.Background(),
		GetAttendeesQuery{ActivityID: "act-42"}, GetAttendeesDeps{API: api})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("expected total 3, got %d", res.Total)
	}
	if res.Attendees[0].Name != "Ana" || res.Attendees[2].Name != "Carla" {
		t.Errorf("unexpected order: %v", res.Attendees)
	}
}

// TestQueryGetAttendees_Pages verifies windowing and page clamping for a
// large activity.
func TestQueryGetAttendees_Pages(t *testing.T) {
	api := &mockAPI{}
	for i := 0; i < 25; i++ {
		api.attendees = append(api.attendees, session.User{
			ID:   fmt.Sprintf("user-%03d", i),
			Name: fmt.Sprintf("Attendee %03d", i),
		})
	}

	res, err := QueryGetAttendees(context.Background(),
		GetAttendeesQuery{ActivityID: "act-42", Page: 3, PerPage: 10},
		GetAttendeesDeps{API: api})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 25 || res.Page.TotalPages != 3 {
		t.Fatalf("expected 25 across 3 pages, got %d across %d", res.Total, res.Page.TotalPages)
	}
	if len(res.Attendees) != 5 {
		t.Errorf("expected 5 on the last page, got %d", len(res.Attendees))
	}
	if res.Attendees[0].Name != "Attendee 020" {
		t.Errorf("unexpected first row on page 3: %q", res.Attendees[0].Name)
	}

	res, err = QueryGetAttendees(context.Background(),
		GetAttendeesQuery{ActivityID: "act-42", Page: 9, PerPage: 10},
		GetAttendeesDeps{API: api})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Page.Page != 3 {
		t.Errorf("expected out-of-range page clamped to 3, got %d", res.Page.Page)
	}
	if len(res.Attendees) != 5 {
		t.Errorf("expected clamped page populated, got %d rows", len(res.Attendees))
	}
}

// TestQueryGetAttendees_Empty verifies an activity with no check-ins.
func TestQueryGetAttendees_Empty(t *testing.T) {
	res, err := QueryGetAttendees(context.Background(),
		GetAttendeesQuery{ActivityID: "act-42"}, GetAttendeesDeps{API: &mockAPI{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 0 || len(res.Attendees) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

// TestQueryGetAttendees_FetchError verifies errors pass through.
func TestQueryGetAttendees_FetchError(t *testing.T) {
	api := &mockAPI{listErr: errors.New("connection reset")}

	if _, err := QueryGetAttendees(context.Background(),
		GetAttendeesQuery{ActivityID: "act-42"}, GetAttendeesDeps{API: api}); err == nil {
		t.Fatal("expected fetch error surfaced")
	}
}
