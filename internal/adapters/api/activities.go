package api

import (
	"context"
	"errors"
	"net/http"

	"companion/internal/domain/activity"
	"companion/internal/domain/session"
)

// ListActivities returns every activity of the current event.
func (c *Client) ListActivities(ctx context.Context) ([]activity.Activity, error) {
	var out []activity.Activity
	if err := c.do(ctx, http.MethodGet, "/activities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetActivity looks up one activity by id.
// POST: Returns activity.ErrNotFound when the backend does not know the id
func (c *Client) GetActivity(ctx context.Context, id string) (activity.Activity, error) {
	var out activity.Activity
	if err := c.do(ctx, http.MethodGet, "/activities/"+id, nil, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return activity.Activity{}, activity.ErrNotFound
		}
		return activity.Activity{}, err
	}
	return out, nil
}

// CreateActivity creates an activity (organizer glue).
func (c *Client) CreateActivity(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	var out activity.Activity
	if err := c.do(ctx, http.MethodPost, "/activities", a, &out); err != nil {
		return activity.Activity{}, err
	}
	return out, nil
}

// UpdateActivity updates an activity (organizer glue).
func (c *Client) UpdateActivity(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	var out activity.Activity
	if err := c.do(ctx, http.MethodPut, "/activities/"+a.ID, a, &out); err != nil {
		return activity.Activity{}, err
	}
	return out, nil
}

// DeleteActivity deletes an activity (organizer glue).
func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/activities/"+id, nil, nil)
}

// ListAttendees returns the users checked in to an activity. Admin
// screens always re-fetch this list; no attendance cache is kept.
func (c *Client) ListAttendees(ctx context.Context, activityID string) ([]session.User, error) {
	var out []session.User
	if err := c.do(ctx, http.MethodGet, "/activities/"+activityID+"/attendees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
