package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"companion/internal/domain/activity"
	"companion/internal/domain/scan"
)

// ActivityLookup defines the activity read used to validate scan
// targets and notification references. GetActivity returns
// activity.ErrNotFound for unknown ids.
type ActivityLookup interface {
	GetActivity(ctx context.Context, id string) (activity.Activity, error)
}

// CheckInAPI defines the check-in submission endpoint.
type CheckInAPI interface {
	SubmitCheckIn(ctx context.Context, credential, activityID string) error
}

// CheckInInput carries one scan event.
type CheckInInput struct {
	Credential string
	ActivityID string
}

// CheckInDeps holds dependencies for CheckIn.
type CheckInDeps struct {
	Activities ActivityLookup
	CheckIns   CheckInAPI
}

// ExecuteCheckIn validates and submits one scan event.
//
// The target activity is verified first; an unknown id short-circuits
// without touching the check-in endpoint. There are no retries: a
// failed submission is reported once, and a fresh scan (new event, new
// lock cycle) is required to try again, so retries can never amplify
// duplicate-submission risk.
// POST: Always returns a classified result for the feedback overlay
func ExecuteCheckIn(ctx context.Context, input CheckInInput, deps CheckInDeps) scan.Result {
	evt := scan.Event{Credential: input.Credential, ActivityID: input.ActivityID}
	if err := evt.Validate(); err != nil {
		return scan.RequestFailed(err.Error())
	}

	if _, err := deps.Activities.GetActivity(ctx, evt.ActivityID); err != nil {
		if errors.Is(err, activity.ErrNotFound) {
			slog.Info("checkin_event", "event", "activity_not_found", "activity_id", evt.ActivityID)
			return scan.ActivityNotFound()
		}
		slog.Warn("checkin_event", "event", "activity_lookup_failed", "activity_id", evt.ActivityID, "error", err.Error())
		return scan.RequestFailed(err.Error())
	}

	if err := deps.CheckIns.SubmitCheckIn(ctx, evt.Credential, evt.ActivityID); err != nil {
		slog.Warn("checkin_event", "event", "submission_failed", "activity_id", evt.ActivityID, "error", err.Error())
		return scan.RequestFailed(err.Error())
	}

	slog.Info("checkin_event", "event", "checked_in", "activity_id", evt.ActivityID)
	return scan.Success()
}
