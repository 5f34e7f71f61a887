package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"companion/internal/domain/notification"
)

// NotificationSender defines the backend's send endpoints.
type NotificationSender interface {
	SendNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	BroadcastNotification(ctx context.Context, title, body string, data map[string]string) error
}

// SendNotificationInput carries an organizer's outgoing notification.
// An empty UserID means broadcast. ActivityID, when set, is embedded as
// the navigation reference.
type SendNotificationInput struct {
	UserID     string
	Title      string
	Body       string
	ActivityID string
}

// SendNotificationDeps holds dependencies for SendNotification.
type SendNotificationDeps struct {
	Sessions SessionReader
	API      NotificationSender
}

var (
	ErrAdminRequired = errors.New("sending notifications requires the admin role")
	ErrMissingTitle  = errors.New("notification title is required")
)

// ExecuteSendNotification sends a direct or broadcast notification.
// PRE: The signed-in user holds the admin role
func ExecuteSendNotification(ctx context.Context, input SendNotificationInput, deps SendNotificationDeps) error {
	sess, ok := deps.Sessions.Current()
	if !ok || !sess.User.IsAdmin() {
		return ErrAdminRequired
	}
	if input.Title == "" {
		return ErrMissingTitle
	}

	var data map[string]string
	if input.ActivityID != "" {
		data = map[string]string{notification.DataKeyActivity: input.ActivityID}
	}

	var err error
	if input.UserID == "" {
		err = deps.API.BroadcastNotification(ctx, input.Title, input.Body, data)
	} else {
		err = deps.API.SendNotification(ctx, input.UserID, input.Title, input.Body, data)
	}
	if err != nil {
		slog.Warn("notification_event", "event", "send_failed", "error", err.Error())
		return err
	}

	slog.Info("notification_event", "event", "sent", "broadcast", input.UserID == "", "activity_id", input.ActivityID)
	return nil
}
