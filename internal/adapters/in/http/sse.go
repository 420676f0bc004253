package http

import (
	"fmt"
	"net/http"

	"salesdesk/internal/pkg/fanout"

	"github.com/labstack/echo/v4"
)

// NotificationHub is the subscriber registry behind the event stream.
type NotificationHub interface {
	Register(l fanout.Listener) (<-chan struct{}, error)
	Unregister(l fanout.Listener)
}

// sseListener writes frames to one open event-stream response. The hub calls
// it from a single goroutine per subscription.
type sseListener struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func newSSEListener(w http.ResponseWriter) *sseListener {
	return &sseListener{w: w, rc: http.NewResponseController(w)}
}

func (l *sseListener) WriteMessage(data []byte) error {
	return l.write(fmt.Sprintf("data: %s\n\n", data))
}

func (l *sseListener) WriteHeartbeat() error {
	return l.write(": heartbeat\n\n")
}

func (l *sseListener) write(frame string) error {
	if _, err := fmt.Fprint(l.w, frame); err != nil {
		return err
	}
	return l.rc.Flush()
}

// StreamNotifications handles GET /api/notifications. The response stays open
// until the client goes away or the hub drops the subscription.
func (s *Server) StreamNotifications(c echo.Context) error {
	res := c.Response()
	header := res.Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	listener := newSSEListener(res)
	done, err := s.hub.Register(listener)
	if err != nil {
		return err
	}

	select {
	case <-c.Request().Context().Done():
		s.hub.Unregister(listener)
		<-done
	case <-done:
	}
	return nil
}
