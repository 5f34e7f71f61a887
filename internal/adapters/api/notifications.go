package api

import (
	"context"
	"net/http"
)

// RegisterPushToken forwards the device's delivery address to the
// backend. The call is authenticated; the backend associates the token
// with the session's user.
func (c *Client) RegisterPushToken(ctx context.Context, deviceID, token string) error {
	body := struct {
		DeviceID string `json:"deviceId"`
		Token    string `json:"token"`
	}{DeviceID: deviceID, Token: token}

	return c.do(ctx, http.MethodPost, "/push-tokens", body, nil)
}

// SendNotification sends a direct notification to one user (organizer
// glue).
func (c *Client) SendNotification(ctx context.Context, userID, title, bodyText string, data map[string]string) error {
	body := struct {
		UserID string            `json:"userId"`
		Title  string            `json:"title"`
		Body   string            `json:"body"`
		Data   map[string]string `json:"data,omitempty"`
	}{UserID: userID, Title: title, Body: bodyText, Data: data}

	return c.do(ctx, http.MethodPost, "/notifications/send", body, nil)
}

// BroadcastNotification sends a notification to every registered device
// (organizer glue).
func (c *Client) BroadcastNotification(ctx context.Context, title, bodyText string, data map[string]string) error {
	body := struct {
		Title string            `json:"title"`
		Body  string            `json:"body"`
		Data  map[string]string `json:"data,omitempty"`
	}{Title: title, Body: bodyText, Data: data}

	return c.do(ctx, http.MethodPost, "/notifications/broadcast", body, nil)
}
