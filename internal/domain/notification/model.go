package notification

import (
	"bytes"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// DataKeyActivity is the free-form payload key that may carry an
// activity reference. Its absence is valid and means "no navigation
// target".
const DataKeyActivity = "activity_id"

// Message is an inbound push notification payload. Data is a free-form
// map; the client only interprets the activity-reference key.
type Message struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// mdRenderer renders organizer-authored markdown bodies safely: raw
// HTML in the source is escaped, matching the activity description
// renderer.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// ActivityRef extracts the embedded activity reference, if any.
// POST: Returns ("", false) when the key is absent or empty
func (m Message) ActivityRef() (string, bool) {
	if m.Data == nil {
		return "", false
	}
	id := m.Data[DataKeyActivity]
	if id == "" {
		return "", false
	}
	return id, true
}

// BodyHTML renders the markdown body to HTML for display.
func (m Message) BodyHTML() (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(m.Body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
