package scan

import "testing"

// TestLock_TryAcquire_SingleAttempt verifies a decode burst yields one attempt.
func TestLock_TryAcquire_SingleAttempt(t *testing.T) {
	l := NewLock()
	if l.Locked() {
		t.Fatal("expected new lock unlocked")
	}
	if !l.TryAcquire() {
		t.Fatal("expected first acquire to succeed")
	}
	if !l.Locked() {
		t.Fatal("expected lock held after acquire")
	}
	if l.TryAcquire() {
		t.Fatal("expected second acquire to be dropped while locked")
	}
	if l.TryAcquire() {
		t.Fatal("expected repeated acquires to keep being dropped")
	}
}

// TestLock_Release_AllowsRescan verifies overlay dismissal unlocks.
func TestLock_Release_AllowsRescan(t *testing.T) {
	l := NewLock()
	l.TryAcquire()
	l.Release()
	if l.Locked() {
		t.Fatal("expected unlocked after release")
	}
	if !l.TryAcquire() {
		t.Fatal("expected re-scan possible after release")
	}
}

// TestLock_Release_Idempotent verifies releasing an unlocked lock is a no-op.
func TestLock_Release_Idempotent(t *testing.T) {
	l := NewLock()
	l.Release()
	l.Release()
	if l.Locked() {
		t.Fatal("expected lock to stay unlocked")
	}
}

// TestLock_ObservePhase_ForegroundResets verifies background->active always unlocks.
func TestLock_ObservePhase_ForegroundResets(t *testing.T) {
	l := NewLock()
	l.TryAcquire()

	l.ObservePhase(PhaseBackground)
	if !l.Locked() {
		t.Fatal("expected lock untouched while backgrounded")
	}

	l.ObservePhase(PhaseActive)
	if l.Locked() {
		t.Fatal("expected foreground transition to reset lock")
	}
}

// TestLock_ObservePhase_ResetWithoutAttempt verifies the reset applies even
// when no check-in was ever initiated.
func TestLock_ObservePhase_ResetWithoutAttempt(t *testing.T) {
	l := NewLock()
	l.ObservePhase(PhaseBackground)
	l.ObservePhase(PhaseActive)
	if l.Locked() {
		t.Fatal("expected lock unlocked after idle background cycle")
	}
	if !l.TryAcquire() {
		t.Fatal("expected scanner usable after foreground return")
	}
}

// TestLock_ObservePhase_ActiveRepeat verifies a repeated active report does
// not unlock an in-flight attempt.
func TestLock_ObservePhase_ActiveRepeat(t *testing.T) {
	l := NewLock()
	l.TryAcquire()
	l.ObservePhase(PhaseActive)
	if !l.Locked() {
		t.Fatal("expected active->active to leave the lock held")
	}
}

// TestEvent_Validate verifies the non-emptiness checks.
func TestEvent_Validate(t *testing.T) {
	e := Event{Credential: "abc123", ActivityID: "act-42"}
	if err := e.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e = Event{ActivityID: "act-42"}
	if err := e.Validate(); err != ErrEmptyCredential {
		t.Errorf("expected ErrEmptyCredential, got %v", err)
	}

	e = Event{Credential: "abc123"}
	if err := e.Validate(); err != ErrMissingActivityID {
		t.Errorf("expected ErrMissingActivityID, got %v", err)
	}
}

// TestRequestFailed_GenericFallback verifies a missing server message falls
// back to the generic one.
func TestRequestFailed_GenericFallback(t *testing.T) {
	r := RequestFailed("")
	if r.Message != GenericFailureMessage {
		t.Errorf("expected generic fallback, got %q", r.Message)
	}

	r = RequestFailed("activity is full")
	if r.Message != "activity is full" {
		t.Errorf("expected server message verbatim, got %q", r.Message)
	}
}
