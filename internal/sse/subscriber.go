package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/event"
)

// Snapshotter supplies the current session for change notifications
type Snapshotter interface {
	Snapshot() domain.Snapshot
}

// Subscriber bridges the internal event bus to the hub
type Subscriber struct {
	hub      *Hub
	bus      event.Bus
	sessions Snapshotter
}

// NewSubscriber creates a new stream subscriber
func NewSubscriber(hub *Hub, bus event.Bus, sessions Snapshotter) *Subscriber {
	return &Subscriber{
		hub:      hub,
		bus:      bus,
		sessions: sessions,
	}
}

// Subscribe registers handlers for every daycare event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.AllTypes))
	for _, t := range event.AllTypes {
		if t == event.SessionChanged {
			s.bus.Subscribe(t, s.handleSessionChanged)
		} else {
			s.bus.Subscribe(t, s.forward)
		}
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", types)
}

// forward relays an event as-is under its bus type
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	return nil
}

// handleSessionChanged sends a fresh snapshot for changes between ticks.
// Tick changes are already covered by tick.completed.
func (s *Subscriber) handleSessionChanged(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SessionChangedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	if payload.Reason == event.ReasonTick {
		return nil
	}
	s.hub.Broadcast(EventTypeSnapshot, s.sessions.Snapshot())
	return nil
}
