package session

import (
	"context"

	domain "companion/internal/domain/session"
)

// Store persists the authenticated session across process restarts.
//
// The underlying representation is two opaque key-value entries (the
// serialized user record and the token string) with no schema
// versioning; a corrupt user entry is deleted rather than repaired.
// The keys are private to this package — nothing else reads or writes
// them.
type Store interface {
	// Load reads both entries. The second return is false when either
	// entry is missing or the stored user fails to parse.
	Load(ctx context.Context) (domain.Session, bool, error)
	// Save writes user and token atomically.
	Save(ctx context.Context, s domain.Session) error
	// SaveUser overwrites only the user entry, leaving the token untouched.
	SaveUser(ctx context.Context, u domain.User) error
	// Clear removes both entries. Safe to call when nothing is stored.
	Clear(ctx context.Context) error
}
