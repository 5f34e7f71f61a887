package api

import (
	"context"
	"net/http"

	"companion/internal/domain/event"
	"companion/internal/domain/sponsor"
	"companion/internal/domain/tag"
)

// Event, sponsor and tag endpoints are plain pass-throughs: the client
// renders what the backend returns and forwards organizer edits
// unchanged.

// ListEvents returns the conference editions.
func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	var out []event.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEvent creates an event (organizer glue).
func (c *Client) CreateEvent(ctx context.Context, e event.Event) (event.Event, error) {
	var out event.Event
	if err := c.do(ctx, http.MethodPost, "/events", e, &out); err != nil {
		return event.Event{}, err
	}
	return out, nil
}

// UpdateEvent updates an event (organizer glue).
func (c *Client) UpdateEvent(ctx context.Context, e event.Event) (event.Event, error) {
	var out event.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+e.ID, e, &out); err != nil {
		return event.Event{}, err
	}
	return out, nil
}

// DeleteEvent deletes an event (organizer glue).
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil)
}

// ListSponsors returns the sponsors shown in the app.
func (c *Client) ListSponsors(ctx context.Context) ([]sponsor.Sponsor, error) {
	var out []sponsor.Sponsor
	if err := c.do(ctx, http.MethodGet, "/sponsors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSponsor creates a sponsor (organizer glue).
func (c *Client) CreateSponsor(ctx context.Context, s sponsor.Sponsor) (sponsor.Sponsor, error) {
	var out sponsor.Sponsor
	if err := c.do(ctx, http.MethodPost, "/sponsors", s, &out); err != nil {
		return sponsor.Sponsor{}, err
	}
	return out, nil
}

// DeleteSponsor deletes a sponsor (organizer glue).
func (c *Client) DeleteSponsor(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sponsors/"+id, nil, nil)
}

// ListTags returns the activity tags.
func (c *Client) ListTags(ctx context.Context) ([]tag.Tag, error) {
	var out []tag.Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTag creates a tag (organizer glue).
func (c *Client) CreateTag(ctx context.Context, t tag.Tag) (tag.Tag, error) {
	var out tag.Tag
	if err := c.do(ctx, http.MethodPost, "/tags", t, &out); err != nil {
		return tag.Tag{}, err
	}
	return out, nil
}

// DeleteTag deletes a tag (organizer glue).
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tags/"+id, nil, nil)
}
