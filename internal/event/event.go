package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Daycare event types, following <entity>.<action>
const (
	SessionChanged Type = "session.changed" // any observable state change; drives autosave
	SessionStarted Type = "session.started"
	SessionReset   Type = "session.reset"

	TickCompleted Type = "tick.completed"

	DogSpawned    Type = "dog.spawned"
	DogInteracted Type = "dog.interacted"
	DogRetrieved  Type = "dog.retrieved"
	DogDeparted   Type = "dog.departed"

	GameEventStarted Type = "game_event.started"
	GameEventEnded   Type = "game_event.ended"

	WorkerHired      Type = "worker.hired"
	UpgradePurchased Type = "upgrade.purchased"
	SlotPurchased    Type = "slot.purchased"
)

// AllTypes lists every daycare event type.
var AllTypes = []Type{
	SessionChanged, SessionStarted, SessionReset, TickCompleted,
	DogSpawned, DogInteracted, DogRetrieved, DogDeparted,
	GameEventStarted, GameEventEnded,
	WorkerHired, UpgradePurchased, SlotPurchased,
}

// Typed event payloads

// SessionChangedPayloadV1 carries the cause of a state change
type SessionChangedPayloadV1 struct {
	Reason    string `json:"reason"`
	Money     int    `json:"money"`
	DogCount  int    `json:"dog_count"`
	Timestamp int64  `json:"timestamp"`
}

// SessionStartedPayloadV1 is published when the player names the daycare
type SessionStartedPayloadV1 struct {
	DaycareName string `json:"daycare_name"`
}

// TickCompletedPayloadV1 carries the post-tick snapshot
type TickCompletedPayloadV1 struct {
	Tick       uint64          `json:"tick"`
	MoneyDelta int             `json:"money_delta"`
	Snapshot   domain.Snapshot `json:"snapshot"`
}

// DogPayloadV1 identifies a dog
type DogPayloadV1 struct {
	DogID  string           `json:"dog_id"`
	Name   string           `json:"name"`
	Breed  domain.Breed     `json:"breed"`
	Trait  domain.TraitType `json:"trait"`
	Action domain.Action    `json:"action,omitempty"`
	Actor  string           `json:"actor,omitempty"` // "player" or a worker id
}

// DogRetrievedPayloadV1 carries the scored outcome of a stay
type DogRetrievedPayloadV1 struct {
	Departure domain.Departure `json:"departure"`
}

// DogDepartedPayloadV1 is published when a retrieved dog leaves and its payout is credited
type DogDepartedPayloadV1 struct {
	DogID  string `json:"dog_id"`
	Name   string `json:"name"`
	Payout int    `json:"payout"`
}

// GameEventPayloadV1 wraps a global event instance
type GameEventPayloadV1 struct {
	Event domain.GameEvent `json:"event"`
}

// PurchasePayloadV1 describes a shop purchase
type PurchasePayloadV1 struct {
	Item     string         `json:"item"` // upgrade key, "slot" or worker id
	Cost     int            `json:"cost"`
	Capacity int            `json:"capacity,omitempty"`
	Worker   *domain.Worker `json:"worker,omitempty"`
}

// New builds a versioned event
func New(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewSessionChangedEvent creates a state change event
func NewSessionChangedEvent(reason string, money, dogCount int) Event {
	return New(SessionChanged, SessionChangedPayloadV1{
		Reason:    reason,
		Money:     money,
		DogCount:  dogCount,
		Timestamp: time.Now().Unix(),
	})
}

// NewDogEvent creates an event about a single dog
func NewDogEvent(t Type, dog domain.Dog, action domain.Action, actor string) Event {
	return New(t, DogPayloadV1{
		DogID:  dog.ID,
		Name:   dog.Name,
		Breed:  dog.Breed,
		Trait:  dog.Trait,
		Action: action,
		Actor:  actor,
	})
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event's type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes handler to every type in types
func SubscribeAll(bus Bus, types []Type, handler Handler) {
	for _, t := range types {
		bus.Subscribe(t, handler)
	}
}
