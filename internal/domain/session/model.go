package session

import "errors"

// Roles assigned by the conference backend.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Domain errors
var (
	ErrMissingID    = errors.New("user id is required")
	ErrMissingEmail = errors.New("user email is required")
	ErrInvalidRole  = errors.New("user role must be member or admin")
)

// User is the authenticated attendee record issued by the backend.
//
// Points is server-owned ranking state; the client never derives or
// mutates it locally. QRCode is the opaque credential other attendees'
// scanners decode to identify this user — it has no client-side meaning
// beyond non-emptiness.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Points int    `json:"points"`
	QRCode string `json:"qrCode"`
}

// Validate checks required fields for a User.
// PRE: User struct is populated from the backend or local storage
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrMissingID
	}
	if u.Email == "" {
		return ErrMissingEmail
	}
	if u.Role != RoleMember && u.Role != RoleAdmin {
		return ErrInvalidRole
	}
	return nil
}

// IsAdmin reports whether the user holds the organizer role.
// INVARIANT: u is not mutated
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session pairs the authenticated user with the bearer token issued at
// sign-in. Both fields are set or cleared together; a session with one
// of the two is never stored or exposed.
type Session struct {
	User  User
	Token string
}

// Present reports whether the session carries both identity and token.
// INVARIANT: s is not mutated
func (s Session) Present() bool {
	return s.User.ID != "" && s.Token != ""
}
