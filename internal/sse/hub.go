// Package sse fans daycare events out to streaming clients.
package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DogDaycare_Go/internal/metrics"
)

// Event is one message on a stream. IDs increase by one per broadcast, so a
// client that sees a gap knows it was dropped and can refetch the session.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one connected stream
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil subscribes to everything

	dropped atomic.Int64
}

// Wants reports whether the client subscribed to eventType
func (c *Client) Wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Dropped returns how many events the client missed because its buffer was full
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Hub keeps the client registry and delivers broadcasts from a single loop
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	stopped bool

	events   chan Event
	seq      atomic.Uint64
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		events:   make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
	}
}

// Start runs the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends delivery and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.StreamClients.Set(0)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.events:
			h.deliver(evt)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.Wants(evt.Type) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			c.dropped.Add(1)
		}
	}
}

// Register adds a client filtered to eventTypes (all types when empty).
// After Stop the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			c.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(c.EventChannel)
		return c
	}
	h.clients[c.ID] = c
	metrics.StreamClients.Set(float64(len(h.clients)))
	return c
}

// Unregister removes a client and closes its channel. Unknown ids are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(c.EventChannel)
	delete(h.clients, clientID)
	metrics.StreamClients.Set(float64(len(h.clients)))
}

// Broadcast queues an event for every interested client
func (h *Hub) Broadcast(eventType string, payload any) {
	select {
	case <-h.shutdown:
		return
	default:
	}

	evt := Event{
		ID:        strconv.FormatUint(h.seq.Add(1), 10),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	select {
	case h.events <- evt:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType, "id", evt.ID)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage encodes an event as a server-sent event frame
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(evt.ID) + len(evt.Type) + 20)
	if evt.ID != "" {
		buf.WriteString("id: " + evt.ID + "\n")
	}
	buf.WriteString("event: " + evt.Type + "\n")
	buf.WriteString("data: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
