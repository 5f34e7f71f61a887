package activity

import (
	"bytes"
	"errors"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Domain errors
var (
	ErrMissingID     = errors.New("activity id is required")
	ErrMissingTitle  = errors.New("activity title is required")
	ErrNegativeSlots = errors.New("activity slots cannot be negative")
	ErrNotFound      = errors.New("activity not found")
)

// Activity is a conference session attendees can enroll in and check
// in to.
//
// Vagas is the enrollment cap: 0 means unlimited, any positive value is
// a hard cap enforced by the backend. The client never computes
// remaining capacity — enroll success or rejection is authoritative
// from the server.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Vagas       int       `json:"vagas"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Validate checks required fields for an Activity.
// PRE: Activity struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Activity) Validate() error {
	if a.ID == "" {
		return ErrMissingID
	}
	if a.Title == "" {
		return ErrMissingTitle
	}
	if a.Vagas < 0 {
		return ErrNegativeSlots
	}
	return nil
}

// Unlimited reports whether the activity has no enrollment cap.
// INVARIANT: a is not mutated
func (a Activity) Unlimited() bool {
	return a.Vagas == 0
}

// DescriptionHTML renders the markdown description to HTML for display.
// PRE: Description may be empty
// POST: Returns rendered HTML; raw HTML in the source is escaped
func (a Activity) DescriptionHTML() (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(a.Description), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
