package pushtoken

import (
	"context"
	"time"
)

// Record is the push delivery address last registered with the backend,
// kept locally so re-registration can detect an unchanged token.
type Record struct {
	DeviceID     string
	Token        string
	RegisteredAt time.Time
}

// Store persists the current push token record.
type Store interface {
	// Current returns the most recently registered record; false when
	// the device was never registered.
	Current(ctx context.Context) (Record, bool, error)
	Save(ctx context.Context, r Record) error
}
