package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"companion/internal/adapters/storage"
	domain "companion/internal/domain/session"
)

// Storage keys for the two session entries. Private to this package.
const (
	keyUser  = "user"
	keyToken = "token"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new session store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads both session entries.
// POST: Returns (zero, false, nil) when either entry is missing; a
// corrupt user entry is deleted and reported as absent (self-healing,
// idempotent on repeated loads)
func (s *SQLiteStore) Load(ctx context.Context) (domain.Session, bool, error) {
	rawUser, ok, err := s.get(ctx, keyUser)
	if err != nil {
		return domain.Session{}, false, err
	}
	if !ok {
		return domain.Session{}, false, nil
	}

	token, ok, err := s.get(ctx, keyToken)
	if err != nil {
		return domain.Session{}, false, err
	}
	if !ok {
		return domain.Session{}, false, nil
	}

	var u domain.User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		slog.Warn("session_event", "event", "corrupt_user_entry_cleared", "error", err.Error())
		if _, delErr := s.db.ExecContext(ctx, `DELETE FROM session_entry WHERE key = ?`, keyUser); delErr != nil {
			return domain.Session{}, false, fmt.Errorf("clear corrupt user entry: %w", delErr)
		}
		return domain.Session{}, false, nil
	}

	return domain.Session{User: u, Token: token}, true, nil
}

// Save writes user and token in one transaction so the stored session
// is never half-populated.
// PRE: s.User and Token are both set
// POST: Both entries are persisted, or neither is
func (s *SQLiteStore) Save(ctx context.Context, sess domain.Session) error {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := upsert(ctx, tx, keyUser, string(raw)); err != nil {
		return err
	}
	if err := upsert(ctx, tx, keyToken, sess.Token); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveUser overwrites only the user entry; the token is untouched.
func (s *SQLiteStore) SaveUser(ctx context.Context, u domain.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_entry (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value
	`, keyUser, string(raw))
	if err != nil {
		return fmt.Errorf("save user entry: %w", err)
	}
	return nil
}

// Clear removes both entries in one transaction. Idempotent.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_entry WHERE key IN (?, ?)`, keyUser, keyToken); err != nil {
		return fmt.Errorf("clear session entries: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_entry WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func upsert(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session_entry (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("save %s entry: %w", key, err)
	}
	return nil
}
