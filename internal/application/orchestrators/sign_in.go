package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"companion/internal/domain/session"
)

// AuthAPI defines the authentication endpoint used by sign-in.
type AuthAPI interface {
	SignIn(ctx context.Context, email, password string) (session.User, string, error)
}

// SessionWriter is the session store surface sign-in needs.
type SessionWriter interface {
	SignIn(ctx context.Context, u session.User, token string) error
}

// SignInInput carries input for the sign-in orchestrator.
type SignInInput struct {
	Email    string
	Password string
}

// SignInDeps holds dependencies for SignIn.
type SignInDeps struct {
	Auth     AuthAPI
	Sessions SessionWriter
}

var ErrMissingCredentials = errors.New("email and password are required")

// ExecuteSignIn exchanges credentials for a session and persists it.
// PRE: Email and Password are non-empty
// POST: On success the session store holds the new user and token; a
// failed persistence write means the user is NOT signed in
func ExecuteSignIn(ctx context.Context, input SignInInput, deps SignInDeps) (session.User, error) {
	if input.Email == "" || input.Password == "" {
		return session.User{}, ErrMissingCredentials
	}

	u, token, err := deps.Auth.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		slog.Info("auth_event", "event", "sign_in_rejected", "email", input.Email)
		return session.User{}, err
	}

	if err := deps.Sessions.SignIn(ctx, u, token); err != nil {
		return session.User{}, err
	}

	return u, nil
}
