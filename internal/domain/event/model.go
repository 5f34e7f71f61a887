package event

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrMissingName = errors.New("event name is required")
	ErrBadInterval = errors.New("event end date cannot precede its start date")
)

// Event is one edition of the conference. Activities belong to an
// event; organizers manage these records through plain CRUD calls.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// Validate checks required fields for an Event.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	if e.Name == "" {
		return ErrMissingName
	}
	if !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return ErrBadInterval
	}
	return nil
}
