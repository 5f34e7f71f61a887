// Package push is the boundary adapter for the push-notification
// delivery channel: a websocket the backend pushes notification
// payloads through while the app is running.
package push

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"companion/internal/domain/notification"
)

// Handler receives each decoded notification payload.
type Handler func(notification.Message)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Listener maintains the websocket connection to the delivery channel
// and dispatches decoded payloads. Delivery failures never block app
// usage: the listener logs and reconnects with capped backoff.
type Listener struct {
	url     string
	token   func() string
	handler Handler
	dialer  *websocket.Dialer
}

// NewListener creates a Listener.
// PRE: url is a ws:// or wss:// endpoint; token returns the current
// session token; handler is non-nil
func NewListener(url string, token func() string, handler Handler) *Listener {
	return &Listener{
		url:     url,
		token:   token,
		handler: handler,
		dialer:  websocket.DefaultDialer,
	}
}

// Run connects and reads payloads until ctx is cancelled, reconnecting
// on any failure. It returns only when ctx is done.
func (l *Listener) Run(ctx context.Context) {
	backoff := initialBackoff
	for {
		connected, err := l.listenOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Warn("push_event", "event", "connection_lost", "error", err.Error())
		}
		// A successful dial means the endpoint is healthy again, even if
		// the connection later dropped without delivering anything.
		if connected {
			backoff = initialBackoff
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < maxBackoff {
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}
}

// listenOnce dials and reads messages until the connection breaks or
// ctx is cancelled. Returns whether the dial succeeded.
func (l *Listener) listenOnce(ctx context.Context) (bool, error) {
	header := http.Header{}
	if tok := l.token(); tok != "" {
		header.Set("Authorization", "Bearer "+tok)
	}

	conn, resp, err := l.dialer.DialContext(ctx, l.url, header)
	if err != nil {
		return false, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Close the connection when ctx is cancelled so ReadJSON unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	slog.Info("push_event", "event", "connected", "url", l.url)

	for {
		var msg notification.Message
		if err := conn.ReadJSON(&msg); err != nil {
			return true, err
		}
		l.handler(msg)
	}
}
