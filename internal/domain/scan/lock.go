package scan

// Phase is the app lifecycle phase observed by the scanning surface.
type Phase string

const (
	PhaseActive     Phase = "active"
	PhaseBackground Phase = "background"
)

// Lock is the reentrancy guard between the camera decoder and check-in
// submission. The decoder fires repeatedly while a code stays in view;
// the lock collapses that burst into one logical attempt.
//
// Two-state machine (unlocked -> locked -> unlocked) with two
// independent unlock triggers: Release (the user dismissed a feedback
// overlay) and ObservePhase seeing a background->active transition (a
// stale lock left by a suspended request must not block the scanner
// forever). Both triggers are required.
type Lock struct {
	locked bool
	phase  Phase
}

// NewLock returns an unlocked Lock that assumes the app is active.
func NewLock() Lock {
	return Lock{phase: PhaseActive}
}

// TryAcquire attempts to claim the lock for one check-in attempt.
// PRE: a decoder callback fired with data
// POST: Returns true and locks if it was unlocked; returns false and
// drops the event if already locked
func (l *Lock) TryAcquire() bool {
	if l.locked {
		return false
	}
	l.locked = true
	return true
}

// Release unlocks after the user dismisses a result overlay, so a
// deliberate re-scan never has to wait for a background/foreground
// cycle. Safe to call when already unlocked.
func (l *Lock) Release() {
	l.locked = false
}

// ObservePhase records an app lifecycle transition. Returning to the
// active phase forcibly resets the lock regardless of prior state.
// POST: locked is false whenever the observed transition is
// background -> active
func (l *Lock) ObservePhase(p Phase) {
	if l.phase != PhaseActive && p == PhaseActive {
		l.locked = false
	}
	l.phase = p
}

// Locked reports the current lock state.
// INVARIANT: l is not mutated
func (l Lock) Locked() bool {
	return l.locked
}
