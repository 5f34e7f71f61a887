package api

import (
	"context"
	"net/http"
)

// SubmitCheckIn records attendance for the scanned credential at the
// given activity. The backend keys the call on the pair; the client
// never retries a failed submission (a fresh scan is required).
func (c *Client) SubmitCheckIn(ctx context.Context, credential, activityID string) error {
	body := struct {
		QRCode     string `json:"qrCode"`
		ActivityID string `json:"activityId"`
	}{QRCode: credential, ActivityID: activityID}

	return c.do(ctx, http.MethodPost, "/checkins", body, nil)
}
