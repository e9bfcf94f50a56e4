package metrics

import (
	"context"

	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/logger"
)

// EventMetricsCollector subscribes to daycare events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all daycare events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, event.AllTypes, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TickCompleted:
		p, err := event.DecodePayload[event.TickCompletedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		Ticks.Inc()
		ActiveDogs.Set(float64(len(p.Snapshot.Dogs)))
		Money.Set(float64(p.Snapshot.Money))

	case event.SessionChanged:
		p, err := event.DecodePayload[event.SessionChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		ActiveDogs.Set(float64(p.DogCount))
		Money.Set(float64(p.Money))

	case event.DogSpawned:
		DogsSpawned.Inc()

	case event.DogInteracted:
		p, err := event.DecodePayload[event.DogPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		actor := ActorWorker
		if p.Actor == event.ActorPlayer {
			actor = ActorPlayer
		}
		Interactions.WithLabelValues(string(p.Action), actor).Inc()

	case event.DogRetrieved:
		p, err := event.DecodePayload[event.DogRetrievedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		outcome := OutcomeFailure
		if p.Departure.Success {
			outcome = OutcomeSuccess
		}
		Departures.WithLabelValues(outcome).Inc()

	case event.DogDeparted:
		p, err := event.DecodePayload[event.DogDepartedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		Payout.Add(float64(p.Payout))

	case event.UpgradePurchased, event.SlotPurchased, event.WorkerHired:
		p, err := event.DecodePayload[event.PurchasePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		Purchases.WithLabelValues(purchaseItem(evt.Type, p)).Inc()
		MoneySpent.Add(float64(p.Cost))

	case event.GameEventStarted:
		p, err := event.DecodePayload[event.GameEventPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		GameEvents.WithLabelValues(string(p.Event.Type)).Inc()

	case event.SessionReset:
		SessionResets.Inc()
	}

	return nil
}

// purchaseItem keeps the item label bounded: worker ids collapse to "worker"
func purchaseItem(t event.Type, p event.PurchasePayloadV1) string {
	switch t {
	case event.WorkerHired:
		return ItemWorker
	case event.SlotPurchased:
		return ItemSlot
	}
	return p.Item
}
