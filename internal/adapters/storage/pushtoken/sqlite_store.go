package pushtoken

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"companion/internal/adapters/storage"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new push token store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Current returns the most recently registered record.
// INVARIANT: Store state is not mutated
func (s *SQLiteStore) Current(ctx context.Context) (Record, bool, error) {
	var r Record
	var registeredAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT device_id, token, registered_at
		FROM push_token
		ORDER BY registered_at DESC
		LIMIT 1
	`).Scan(&r.DeviceID, &r.Token, &registeredAt)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}

	t, err := time.Parse(time.RFC3339, registeredAt)
	if err != nil {
		return Record{}, false, fmt.Errorf("parse registered_at: %w", err)
	}
	r.RegisteredAt = t
	return r, true, nil
}

// Save upserts the record for the device.
// PRE: r.DeviceID and r.Token are non-empty
// POST: The device's record reflects r
func (s *SQLiteStore) Save(ctx context.Context, r Record) error {
	if r.DeviceID == "" || r.Token == "" {
		return fmt.Errorf("push token record requires device id and token")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO push_token (device_id, token, registered_at) VALUES (?, ?, ?)
		ON CONFLICT(device_id) DO UPDATE SET
			token=excluded.token,
			registered_at=excluded.registered_at
	`, r.DeviceID, r.Token, r.RegisteredAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save push_token: %w", err)
	}
	return nil
}
