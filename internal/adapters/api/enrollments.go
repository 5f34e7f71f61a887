package api

import (
	"context"
	"errors"
	"net/http"

	"companion/internal/domain/enrollment"
)

// GetEnrollment looks up the enrollment record for a (user, activity)
// pair.
// POST: Returns enrollment.ErrNotFound when no record exists — the
// expected "not enrolled" outcome, distinct from transport failures
func (c *Client) GetEnrollment(ctx context.Context, userID, activityID string) (enrollment.Enrollment, error) {
	var out enrollment.Enrollment
	err := c.do(ctx, http.MethodGet, "/users/"+userID+"/enrollments/"+activityID, nil, &out)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return enrollment.Enrollment{}, enrollment.ErrNotFound
		}
		return enrollment.Enrollment{}, err
	}
	return out, nil
}

// ListEnrollmentsByUser returns all of a user's enrollment records.
func (c *Client) ListEnrollmentsByUser(ctx context.Context, userID string) ([]enrollment.Enrollment, error) {
	var out []enrollment.Enrollment
	if err := c.do(ctx, http.MethodGet, "/users/"+userID+"/enrollments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEnrollment reserves a spot. A capacity-full rejection comes
// back as an *APIError whose message is surfaced verbatim to the user.
func (c *Client) CreateEnrollment(ctx context.Context, userID, activityID string) (enrollment.Enrollment, error) {
	body := struct {
		UserID     string `json:"userId"`
		ActivityID string `json:"activityId"`
	}{UserID: userID, ActivityID: activityID}

	var out enrollment.Enrollment
	if err := c.do(ctx, http.MethodPost, "/enrollments", body, &out); err != nil {
		return enrollment.Enrollment{}, err
	}
	return out, nil
}

// DeleteEnrollment gives the spot back.
func (c *Client) DeleteEnrollment(ctx context.Context, userID, activityID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+userID+"/enrollments/"+activityID, nil, nil)
}
