// Package fanout delivers serialised notifications to every connected
// listener of this process.
//
// Each registered listener owns a bounded queue drained by its own goroutine,
// so a slow or stuck listener never blocks Broadcast. A listener whose write
// fails, or whose queue overflows, is removed; the remaining listeners are not
// affected and the producer never sees an error.
package fanout

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
)

// DefaultQueueSize is the per-listener backlog used when NewHub receives a
// non-positive size.
const DefaultQueueSize = 64

var (
	// ErrQueueOverflow is the reason logged when a listener falls too far behind.
	ErrQueueOverflow = errors.New("listener queue overflow")

	// ErrHubClosed is returned by Register after Close.
	ErrHubClosed = errors.New("fanout hub is closed")
)

// ConnectedMessage is the first frame every listener receives.
type ConnectedMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Listener is one connected client. Implementations write a single frame and
// report transport failures.
type Listener interface {
	WriteMessage(data []byte) error
	WriteHeartbeat() error
}

type frame struct {
	data      []byte
	heartbeat bool
}

type subscription struct {
	listener Listener
	queue    chan frame
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func (s *subscription) close() {
	s.once.Do(func() { close(s.stop) })
}

// Hub is the process-wide listener set. Construct it once and share it.
type Hub struct {
	mu        sync.RWMutex
	subs      map[Listener]*subscription
	queueSize int
	closed    bool
	connected []byte
	logger    *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(queueSize int, logger *slog.Logger) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	connected, _ := json.Marshal(ConnectedMessage{
		Type:    "connected",
		Message: "Connected to notifications",
	})

	return &Hub{
		subs:      make(map[Listener]*subscription),
		queueSize: queueSize,
		connected: connected,
		logger:    logger.With("component", "notification_fanout"),
	}
}

// Register adds the listener and queues the connected frame ahead of any
// broadcast. The returned channel is closed once the listener has been removed
// and its delivery goroutine has exited. Registering the same listener twice
// returns the existing channel.
func (h *Hub) Register(l Listener) (<-chan struct{}, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}
	if sub, ok := h.subs[l]; ok {
		return sub.done, nil
	}

	sub := &subscription{
		listener: l,
		queue:    make(chan frame, h.queueSize),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	sub.queue <- frame{data: h.connected}
	h.subs[l] = sub

	go h.deliver(sub)

	h.logger.Debug("listener registered", "listeners", len(h.subs))
	return sub.done, nil
}

// Unregister removes the listener. Unknown listeners are ignored.
func (h *Hub) Unregister(l Listener) {
	h.remove(l, nil)
}

// Broadcast queues data for every listener currently registered.
func (h *Hub) Broadcast(data []byte) {
	h.enqueue(frame{data: data})
}

// Heartbeat queues a keep-alive frame for every listener.
func (h *Hub) Heartbeat() {
	h.enqueue(frame{heartbeat: true})
}

// Count reports how many listeners are registered.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close removes every listener and rejects further registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := h.subs
	h.subs = make(map[Listener]*subscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

func (h *Hub) enqueue(f frame) {
	for _, sub := range h.snapshot() {
		select {
		case sub.queue <- f:
		default:
			h.remove(sub.listener, ErrQueueOverflow)
		}
	}
}

func (h *Hub) snapshot() []*subscription {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs := make([]*subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	return subs
}

func (h *Hub) remove(l Listener, reason error) {
	h.mu.Lock()
	sub, ok := h.subs[l]
	if ok {
		delete(h.subs, l)
	}
	remaining := len(h.subs)
	h.mu.Unlock()

	if !ok {
		return
	}
	sub.close()

	if reason != nil {
		h.logger.Warn("listener dropped", "reason", reason, "listeners", remaining)
		return
	}
	h.logger.Debug("listener unregistered", "listeners", remaining)
}

func (h *Hub) deliver(sub *subscription) {
	defer close(sub.done)

	for {
		select {
		case <-sub.stop:
			return
		case f := <-sub.queue:
			if err := write(sub.listener, f); err != nil {
				h.remove(sub.listener, err)
				return
			}
		}
	}
}

func write(l Listener, f frame) error {
	if f.heartbeat {
		return l.WriteHeartbeat()
	}
	return l.WriteMessage(f.data)
}
