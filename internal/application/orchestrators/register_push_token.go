package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"companion/internal/adapters/storage/pushtoken"
	"companion/internal/domain/session"
)

// SessionReader is the read-only session surface the orchestrators use.
type SessionReader interface {
	Current() (session.Session, bool)
}

// PushTokenStore persists the delivery address locally.
type PushTokenStore interface {
	Current(ctx context.Context) (pushtoken.Record, bool, error)
	Save(ctx context.Context, r pushtoken.Record) error
}

// PushRegistrar defines the backend's push-token registration endpoint.
type PushRegistrar interface {
	RegisterPushToken(ctx context.Context, deviceID, token string) error
}

// RegisterPushTokenInput carries the delivery address to register.
type RegisterPushTokenInput struct {
	Token string
}

// RegisterPushTokenDeps holds dependencies for RegisterPushToken.
type RegisterPushTokenDeps struct {
	Sessions SessionReader
	Store    PushTokenStore
	API      PushRegistrar
	// GenerateID mints a device id on first registration (uuid in prod).
	GenerateID func() string
	Now        func() time.Time
}

var (
	ErrSessionRequired = errors.New("push registration requires a signed-in session")
	ErrMissingToken    = errors.New("push token is required")
)

// ExecuteRegisterPushToken persists the delivery address locally and
// forwards it to the backend, reusing the stored device id across token
// rotations. Callers treat a returned error as log-and-continue:
// registration failure never blocks app usage.
// PRE: A session is present (registration is gated on sign-in)
func ExecuteRegisterPushToken(ctx context.Context, input RegisterPushTokenInput, deps RegisterPushTokenDeps) error {
	if input.Token == "" {
		return ErrMissingToken
	}
	if _, ok := deps.Sessions.Current(); !ok {
		return ErrSessionRequired
	}

	rec, ok, err := deps.Store.Current(ctx)
	if err != nil {
		slog.Warn("push_event", "event", "device_id_read_failed", "error", err.Error())
	}
	deviceID := ""
	if err == nil && ok {
		deviceID = rec.DeviceID
	}
	if deviceID == "" {
		deviceID = deps.GenerateID()
	}

	record := pushtoken.Record{DeviceID: deviceID, Token: input.Token, RegisteredAt: deps.Now()}
	if err := deps.Store.Save(ctx, record); err != nil {
		slog.Warn("push_event", "event", "local_save_failed", "error", err.Error())
		return err
	}

	if err := deps.API.RegisterPushToken(ctx, deviceID, input.Token); err != nil {
		slog.Warn("push_event", "event", "registration_failed", "device_id", deviceID, "error", err.Error())
		return err
	}

	slog.Info("push_event", "event", "token_registered", "device_id", deviceID)
	return nil
}
