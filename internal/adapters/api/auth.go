package api

import (
	"context"
	"net/http"

	"companion/internal/domain/session"
)

// SignIn exchanges credentials for the authenticated user and a bearer
// token. The token is opaque to the client.
func (c *Client) SignIn(ctx context.Context, email, password string) (session.User, string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		User  session.User `json:"user"`
		Token string       `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return session.User{}, "", err
	}
	return out.User, out.Token, nil
}

// UpdateProfile sends a profile edit and returns the server's copy of
// the user record, which is authoritative (points and credential are
// never derived locally).
func (c *Client) UpdateProfile(ctx context.Context, u session.User) (session.User, error) {
	var out session.User
	if err := c.do(ctx, http.MethodPut, "/users/"+u.ID, u, &out); err != nil {
		return session.User{}, err
	}
	return out, nil
}
