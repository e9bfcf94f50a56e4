package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), New(eventType, "payload"))

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	calledAfterFailure := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calledAfterFailure = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.Error(t, err)
	assert.True(t, calledAfterFailure, "a failing handler must not stop the rest")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), New(DogSpawned, nil)))
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	SubscribeAll(bus, []Type{DogSpawned, DogDeparted}, func(_ context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), New(DogSpawned, nil)))
	require.NoError(t, bus.Publish(context.Background(), New(DogDeparted, nil)))
	require.NoError(t, bus.Publish(context.Background(), New(WorkerHired, nil)))

	assert.Equal(t, map[Type]int{DogSpawned: 1, DogDeparted: 1}, seen)
}

func TestNewDogEvent(t *testing.T) {
	dog := domain.Dog{ID: "dog-1", Name: "Milo", Breed: domain.BreedYorkie, Trait: domain.TraitHyper}
	evt := NewDogEvent(DogInteracted, dog, domain.ActionFeed, ActorPlayer)

	assert.Equal(t, EventSchemaVersion, evt.Version)
	payload, err := DecodePayload[DogPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Milo", payload.Name)
	assert.Equal(t, domain.ActionFeed, payload.Action)
	assert.Equal(t, ActorPlayer, payload.Actor)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"dog_id": "dog-9", "name": "Bear", "payout": 90}

	payload, err := DecodePayload[DogDepartedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, DogDepartedPayloadV1{DogID: "dog-9", Name: "Bear", Payout: 90}, payload)
}
