package orchestrators

import (
	"context"
	"log/slog"

	"companion/internal/domain/notification"
)

// NavigationTarget is where the presentation layer should go after the
// user acts on a notification.
type NavigationTarget struct {
	ActivityID string
}

// OpenNotificationInput carries the payload the user tapped.
type OpenNotificationInput struct {
	Message notification.Message
}

// OpenNotificationDeps holds dependencies for OpenNotification.
type OpenNotificationDeps struct {
	Activities ActivityLookup
}

// ExecuteOpenNotification resolves a tapped notification to a
// navigation target. A payload without an activity reference, or a
// reference the backend no longer knows, is a quiet no-op — never a
// crash.
// POST: Returns (target, true) only for a resolvable reference
func ExecuteOpenNotification(ctx context.Context, input OpenNotificationInput, deps OpenNotificationDeps) (NavigationTarget, bool) {
	ref, ok := input.Message.ActivityRef()
	if !ok {
		slog.Info("notification_event", "event", "opened_without_target", "title", input.Message.Title)
		return NavigationTarget{}, false
	}

	if _, err := deps.Activities.GetActivity(ctx, ref); err != nil {
		slog.Info("notification_event", "event", "target_unresolvable", "activity_id", ref, "error", err.Error())
		return NavigationTarget{}, false
	}

	return NavigationTarget{ActivityID: ref}, true
}
