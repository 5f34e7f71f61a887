// Package scanner binds the scan lock to check-in submission. The
// camera decoder is noisy — it keeps firing while a code stays in
// view — and the app is repeatedly suspended and resumed; the Scanner
// guarantees at most one in-flight submission per lock cycle across
// both.
package scanner

import (
	"context"
	"log/slog"
	"sync"

	"companion/internal/domain/scan"
)

// SubmitFunc performs one check-in attempt (the check-in orchestrator
// in production).
type SubmitFunc func(ctx context.Context, credential, activityID string) scan.Result

// Scanner is created per scanning screen, targeting one activity.
type Scanner struct {
	mu         sync.Mutex
	lock       scan.Lock
	activityID string
	submit     SubmitFunc
}

// New creates a Scanner for the given activity.
// PRE: submit is non-nil
func New(activityID string, submit SubmitFunc) *Scanner {
	return &Scanner{
		lock:       scan.NewLock(),
		activityID: activityID,
		submit:     submit,
	}
}

// OnDecode handles one decoder callback. The second return reports
// whether a submission ran: false means the event was dropped because
// an attempt is already in flight or its overlay is still up.
//
// The lock stays held after the attempt resolves — only overlay
// dismissal or a foreground transition releases it — so a lingering
// code in view cannot re-submit.
func (s *Scanner) OnDecode(ctx context.Context, credential string) (scan.Result, bool) {
	s.mu.Lock()
	acquired := s.lock.TryAcquire()
	s.mu.Unlock()
	if !acquired {
		return scan.Result{}, false
	}

	res := s.submit(ctx, credential, s.activityID)
	slog.Info("scan_event", "event", "attempt_resolved", "activity_id", s.activityID, "code", string(res.Code))
	return res, true
}

// DismissOverlay is called when the user closes a result overlay,
// releasing the lock so a deliberate re-scan works immediately.
func (s *Scanner) DismissOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock.Release()
}

// OnAppStateChange records an app lifecycle transition. A return to the
// active phase always resets the lock, recovering from any attempt left
// unresolved across a suspension.
func (s *Scanner) OnAppStateChange(phase scan.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock.ObservePhase(phase)
}

// Locked reports the current lock state.
func (s *Scanner) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lock.Locked()
}
