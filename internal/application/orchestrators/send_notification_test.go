package orchestrators

import (
	"context"
	"errors"
	"testing"

	"companion/internal/domain/notification"
	"companion/internal/domain/session"
)

// mockNotificationSender implements NotificationSender for testing.
type mockNotificationSender struct {
	sendErr error

	directCalls    int
	broadcastCalls int
	lastUserID     string
	lastData       map[string]string
}

// SendNotification implements NotificationSender.
func (m *mockNotificationSender) SendNotification(_ context.Context, userID, title, body string, data map[string]string) error {
	m.directCalls++
	m.lastUserID = userID
	m.lastData = data
	return m.sendErr
}

// BroadcastNotification implements NotificationSender.
func (m *mockNotificationSender) BroadcastNotification(_ context.Context, title, body string, data map[string]string) error {
	m.broadcastCalls++
	m.lastData = data
	return m.sendErr
}

// TestExecuteSendNotification_Direct verifies a direct send embeds the
// activity reference.
func TestExecuteSendNotification_Direct(t *testing.T) {
	sender := &mockNotificationSender{}
	err := ExecuteSendNotification(context.Background(),
		SendNotificationInput{UserID: "user-002", Title: "Reminder", Body: "Starts in 10min", ActivityID: "act-42"},
		SendNotificationDeps{Sessions: signedInReader(session.RoleAdmin), API: sender})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.directCalls != 1 || sender.broadcastCalls != 0 {
		t.Errorf("expected one direct send, got %d/%d", sender.directCalls, sender.broadcastCalls)
	}
	if sender.lastData[notification.DataKeyActivity] != "act-42" {
		t.Errorf("expected activity reference embedded, got %v", sender.lastData)
	}
}

// TestExecuteSendNotification_Broadcast verifies empty user id broadcasts.
func TestExecuteSendNotification_Broadcast(t *testing.T) {
	sender := &mockNotificationSender{}
	err := ExecuteSendNotification(context.Background(),
		SendNotificationInput{Title: "Lunch is served"},
		SendNotificationDeps{Sessions: signedInReader(session.RoleAdmin), API: sender})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.broadcastCalls != 1 || sender.directCalls != 0 {
		t.Errorf("expected one broadcast, got %d/%d", sender.broadcastCalls, sender.directCalls)
	}
	if sender.lastData != nil {
		t.Errorf("expected no data map without reference, got %v", sender.lastData)
	}
}

// TestExecuteSendNotification_RequiresAdmin verifies the role gate.
func TestExecuteSendNotification_RequiresAdmin(t *testing.T) {
	sender := &mockNotificationSender{}

	err := ExecuteSendNotification(context.Background(),
		SendNotificationInput{Title: "Hello"},
		SendNotificationDeps{Sessions: signedInReader(session.RoleMember), API: sender})
	if !errors.Is(err, ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired for member, got %v", err)
	}

	err = ExecuteSendNotification(context.Background(),
		SendNotificationInput{Title: "Hello"},
		SendNotificationDeps{Sessions: &mockSessionReader{}, API: sender})
	if !errors.Is(err, ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired when signed out, got %v", err)
	}
	if sender.directCalls+sender.broadcastCalls != 0 {
		t.Error("expected no sends without authorization")
	}
}

// TestExecuteSendNotification_RequiresTitle verifies empty titles are rejected.
func TestExecuteSendNotification_RequiresTitle(t *testing.T) {
	err := ExecuteSendNotification(context.Background(),
		SendNotificationInput{},
		SendNotificationDeps{Sessions: signedInReader(session.RoleAdmin), API: &mockNotificationSender{}})
	if !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
}
