package sessionstore

import (
	"context"
	"errors"
	"testing"

	"companion/internal/domain/session"
)

// mockStorage implements Storage for testing.
type mockStorage struct {
	stored  session.Session
	present bool

	loadErr  error
	saveErr  error
	clearErr error
}

// Load implements Storage.
// POST: returns the stored session when present
func (m *mockStorage) Load(_ context.Context) (session.Session, bool, error) {
	if m.loadErr != nil {
		return session.Session{}, false, m.loadErr
	}
	return m.stored, m.present, nil
}

// Save implements Storage.
// POST: both fields are stored together
func (m *mockStorage) Save(_ context.Context, s session.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored, m.present = s, true
	return nil
}

// SaveUser implements Storage.
// POST: only the user record changes
func (m *mockStorage) SaveUser(_ context.Context, u session.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored.User = u
	return nil
}

// Clear implements Storage.
// POST: nothing remains stored
func (m *mockStorage) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.stored, m.present = session.Session{}, false
	return nil
}

func testUser() session.User {
	return session.User{ID: "user-001", Email: "ana@example.com", Role: session.RoleMember, QRCode: "abc123"}
}

// TestStore_LoadingUntilRehydrate verifies loading means unknown, not absent.
func TestStore_LoadingUntilRehydrate(t *testing.T) {
	store := New(&mockStorage{})
	if !store.Loading() {
		t.Fatal("expected loading before rehydrate")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected no observable session while loading")
	}

	store.Rehydrate(context.Background())
	if store.Loading() {
		t.Fatal("expected loading flipped after rehydrate")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected signed out after empty rehydrate")
	}
}

// TestStore_Rehydrate_Present verifies a persisted session is restored.
func TestStore_Rehydrate_Present(t *testing.T) {
	storage := &mockStorage{stored: session.Session{User: testUser(), Token: "tok"}, present: true}
	store := New(storage)

	store.Rehydrate(context.Background())

	sess, ok := store.Current()
	if !ok {
		t.Fatal("expected session restored")
	}
	if sess.User.ID != "user-001" || sess.Token != "tok" {
		t.Errorf("unexpected session: %+v", sess)
	}
	if store.Token() != "tok" {
		t.Errorf("expected token exposed, got %q", store.Token())
	}
}

// TestStore_Rehydrate_StorageError verifies storage failure resolves to
// signed-out instead of crashing, with loading complete.
func TestStore_Rehydrate_StorageError(t *testing.T) {
	store := New(&mockStorage{loadErr: errors.New("disk gone")})

	store.Rehydrate(context.Background())

	if store.Loading() {
		t.Fatal("expected loading complete despite error")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected signed out on storage error")
	}
}

// TestStore_SignInSignOut verifies the full round trip clears both the
// memory and the persisted entries.
func TestStore_SignInSignOut(t *testing.T) {
	storage := &mockStorage{}
	store := New(storage)
	ctx := context.Background()
	store.Rehydrate(ctx)

	if err := store.SignIn(ctx, testUser(), "tok"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if _, ok := store.Current(); !ok {
		t.Fatal("expected session present after sign-in")
	}

	if err := store.SignOut(ctx); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected no session after sign-out")
	}
	if store.Token() != "" {
		t.Errorf("expected empty token after sign-out, got %q", store.Token())
	}
	if storage.present {
		t.Error("expected persisted entries removed")
	}
}

// TestStore_SignOut_Idempotent verifies signing out twice is safe.
func TestStore_SignOut_Idempotent(t *testing.T) {
	store := New(&mockStorage{})
	ctx := context.Background()
	store.Rehydrate(ctx)

	if err := store.SignOut(ctx); err != nil {
		t.Fatalf("first SignOut failed: %v", err)
	}
	if err := store.SignOut(ctx); err != nil {
		t.Fatalf("second SignOut failed: %v", err)
	}
}

// TestStore_SignIn_PersistFailure verifies memory is untouched when the
// write fails: the caller must not assume success.
func TestStore_SignIn_PersistFailure(t *testing.T) {
	storage := &mockStorage{saveErr: errors.New("disk full")}
	store := New(storage)
	ctx := context.Background()
	store.Rehydrate(ctx)

	if err := store.SignIn(ctx, testUser(), "tok"); err == nil {
		t.Fatal("expected error from failed persistence")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected in-memory state unchanged after failed sign-in")
	}
}

// TestStore_SignOut_ClearFailureStillClearsMemory verifies the user's
// sign-out wins even when storage misbehaves.
func TestStore_SignOut_ClearFailureStillClearsMemory(t *testing.T) {
	storage := &mockStorage{clearErr: errors.New("locked")}
	store := New(storage)
	ctx := context.Background()
	storage.stored = session.Session{User: testUser(), Token: "tok"}
	storage.present = true
	store.Rehydrate(ctx)

	if err := store.SignOut(ctx); err == nil {
		t.Fatal("expected storage error surfaced")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("expected memory cleared despite storage failure")
	}
}

// TestStore_UpdateUser verifies profile edits keep the token.
func TestStore_UpdateUser(t *testing.T) {
	storage := &mockStorage{}
	store := New(storage)
	ctx := context.Background()
	store.Rehydrate(ctx)
	store.SignIn(ctx, testUser(), "tok")

	u := testUser()
	u.Name = "Ana S. Oliveira"
	if err := store.UpdateUser(ctx, u); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	sess, ok := store.Current()
	if !ok || sess.User.Name != "Ana S. Oliveira" {
		t.Errorf("expected updated user, got %+v", sess.User)
	}
	if sess.Token != "tok" {
		t.Errorf("expected token preserved, got %q", sess.Token)
	}
}

// TestStore_UpdateUser_NoSession verifies the wiring-defect guard.
func TestStore_UpdateUser_NoSession(t *testing.T) {
	store := New(&mockStorage{})
	ctx := context.Background()
	store.Rehydrate(ctx)

	if err := store.UpdateUser(ctx, testUser()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}
