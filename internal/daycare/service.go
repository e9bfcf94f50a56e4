package daycare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/logger"
	"github.com/osse101/DogDaycare_Go/internal/repository"
	"github.com/osse101/DogDaycare_Go/internal/utils"
)

// Service is the interaction surface of the daycare. Every method is safe
// for concurrent use; calls are applied one at a time and never interleave
// with a tick.
type Service interface {
	// Restore loads the saved session once at startup. Load failures fall
	// back to a fresh daycare.
	Restore(ctx context.Context)

	Snapshot() domain.Snapshot
	SaveData() *domain.SaveData
	Departures() []domain.Departure
	FeedCost() int
	SlotCost() int
	UpgradeCatalog() []domain.Upgrade
	Candidate() domain.Worker

	Interact(ctx context.Context, dogID string, action domain.Action) error
	BuyUpgrade(ctx context.Context, key domain.UpgradeKey) error
	BuySlot(ctx context.Context) error
	HireWorker(ctx context.Context, candidate domain.Worker) error
	StartGame(ctx context.Context, name string) error
	SetPlaying(ctx context.Context, playing bool)
	IsPlaying() bool
	Reset(ctx context.Context)

	// Tick advances the simulation one step regardless of the play flag
	Tick(ctx context.Context) domain.TickResult

	// ReserveSpawn marks a spawn pending when there is room and none is
	// pending yet. The returned generation must be passed to CompleteSpawn.
	ReserveSpawn() (uint64, bool)
	// CompleteSpawn inserts the reserved dog if capacity still allows.
	// Reservations made before a reset are ignored.
	CompleteSpawn(ctx context.Context, generation uint64) bool
}

type service struct {
	mu         sync.Mutex
	repo       repository.Session
	bus        event.Bus
	engine     *Engine
	gen        *Generator
	ledger     *Ledger
	now        func() time.Time
	session    domain.Session
	candidate  domain.Worker
	playing    bool
	tick       uint64
	generation uint64
}

// NewService creates the daycare service with a fresh default session.
// Call Restore to replace it with the saved one.
func NewService(repo repository.Session, bus event.Bus, balance config.Balance, rng utils.Rand) Service {
	gen := NewGenerator(rng, balance)
	s := &service{
		repo:    repo,
		bus:     bus,
		engine:  NewEngine(balance, gen),
		gen:     gen,
		ledger:  NewLedger(DefaultLedgerSize),
		now:     time.Now,
		playing: true,
	}
	s.session = gen.DefaultSession()
	s.candidate = gen.Worker(s.engine.CandidateBaseCost(0))
	return s
}

func (s *service) Restore(ctx context.Context) {
	log := logger.FromContext(ctx)

	data, err := s.repo.Load(ctx)
	s.mu.Lock()
	switch {
	case errors.Is(err, domain.ErrNoSavedSession) || (err == nil && data == nil):
		log.Info(LogMsgSessionDefault)
	case err != nil:
		log.Warn(LogMsgSessionLoadFailed, "error", err)
	default:
		s.session = data.Session()
		if s.session.Workers == nil {
			s.session.Workers = []domain.Worker{}
		}
		s.candidate = s.gen.Worker(s.engine.CandidateBaseCost(len(s.session.Workers)))
		log.Info(LogMsgSessionLoaded,
			"money", s.session.Money,
			"dogs", len(s.session.Dogs),
			"workers", len(s.session.Workers),
			"daycare", s.session.DaycareName)
	}
	evts := []event.Event{s.changedLocked(event.ReasonLoad)}
	s.mu.Unlock()

	s.publish(ctx, evts)
}

func (s *service) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *service) SaveData() *domain.SaveData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewSaveData(&s.session, s.now())
}

func (s *service) Departures() []domain.Departure {
	return s.ledger.List()
}

func (s *service) FeedCost() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.FeedCost(s.session.Upgrades)
}

func (s *service) SlotCost() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SlotCost(s.session.MaxDogs)
}

func (s *service) UpgradeCatalog() []domain.Upgrade {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := make([]domain.Upgrade, 0, len(domain.UpgradeKeys))
	for _, key := range domain.UpgradeKeys {
		cost, _ := s.engine.UpgradeCost(key)
		desc := domain.UpgradeDescriptions[key]
		catalog = append(catalog, domain.Upgrade{
			Key:         key,
			Name:        desc.Name,
			Description: desc.Description,
			Cost:        cost,
			Owned:       s.session.Upgrades.Has(key),
		})
	}
	return catalog
}

func (s *service) Candidate() domain.Worker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidate
}

// Interact applies a player action to a dog. Feeding is charged up front;
// any action overrides the dog's current activity.
func (s *service) Interact(ctx context.Context, dogID string, action domain.Action) error {
	target, ok := action.TargetState()
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, action)
	}

	s.mu.Lock()
	idx := s.session.DogIndex(dogID)
	if idx == -1 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrDogNotFound, dogID)
	}
	dog := &s.session.Dogs[idx]
	if dog.State == domain.DogStateRetrieved {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrDogDeparted, dogID)
	}

	if action == domain.ActionFeed {
		cost := s.engine.FeedCost(s.session.Upgrades)
		if s.session.Money < cost {
			money := s.session.Money
			s.mu.Unlock()
			return fmt.Errorf("%w: feeding costs $%d, have $%d", domain.ErrInsufficientFunds, cost, money)
		}
		s.session.Money -= cost
	}
	dog.State = target

	evts := []event.Event{
		event.NewDogEvent(event.DogInteracted, *dog, action, event.ActorPlayer),
		s.changedLocked(event.ReasonInteract),
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgInteraction, "dog_id", dogID, "action", action)
	s.publish(ctx, evts)
	return nil
}

// BuyUpgrade purchases key at its catalog price. Each upgrade can be bought once.
func (s *service) BuyUpgrade(ctx context.Context, key domain.UpgradeKey) error {
	cost, ok := s.engine.UpgradeCost(key)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownUpgrade, key)
	}

	s.mu.Lock()
	if s.session.Upgrades.Has(key) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrUpgradeOwned, key)
	}
	if err := s.chargeLocked(cost); err != nil {
		s.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgPurchaseRejected, "item", key, "error", err)
		return err
	}
	s.session.Upgrades.Grant(key)

	evts := []event.Event{
		event.New(event.UpgradePurchased, event.PurchasePayloadV1{Item: string(key), Cost: cost}),
		s.changedLocked(event.ReasonUpgrade),
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgUpgradePurchased, "upgrade", key, "cost", cost)
	s.publish(ctx, evts)
	return nil
}

// BuySlot raises capacity by one at a price scaled by current capacity
func (s *service) BuySlot(ctx context.Context) error {
	s.mu.Lock()
	cost := s.engine.SlotCost(s.session.MaxDogs)
	if err := s.chargeLocked(cost); err != nil {
		s.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgPurchaseRejected, "item", "slot", "error", err)
		return err
	}
	s.session.MaxDogs++
	capacity := s.session.MaxDogs

	evts := []event.Event{
		event.New(event.SlotPurchased, event.PurchasePayloadV1{Item: "slot", Cost: cost, Capacity: capacity}),
		s.changedLocked(event.ReasonSlot),
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSlotPurchased, "cost", cost, "capacity", capacity)
	s.publish(ctx, evts)
	return nil
}

// HireWorker hires candidate at its listed cost and rolls the next candidate
func (s *service) HireWorker(ctx context.Context, candidate domain.Worker) error {
	if candidate.ID == "" || candidate.Cost < 0 {
		return fmt.Errorf("%w: invalid candidate", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	if _, hired := s.session.Worker(candidate.ID); hired {
		s.mu.Unlock()
		return fmt.Errorf("%w: worker %s already hired", domain.ErrInvalidInput, candidate.ID)
	}
	if err := s.chargeLocked(candidate.Cost); err != nil {
		s.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgPurchaseRejected, "item", candidate.ID, "error", err)
		return err
	}
	s.session.Workers = append(s.session.Workers, candidate)
	s.candidate = s.gen.Worker(s.engine.CandidateBaseCost(len(s.session.Workers)))

	hired := candidate
	evts := []event.Event{
		event.New(event.WorkerHired, event.PurchasePayloadV1{Item: candidate.ID, Cost: candidate.Cost, Worker: &hired}),
		s.changedLocked(event.ReasonHire),
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgWorkerHired, "worker_id", candidate.ID, "name", candidate.Name, "cost", candidate.Cost)
	s.publish(ctx, evts)
	return nil
}

// StartGame names the daycare and marks it opened
func (s *service) StartGame(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: daycare name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	s.session.DaycareName = name
	s.session.HasStarted = true
	evts := []event.Event{
		event.New(event.SessionStarted, event.SessionStartedPayloadV1{DaycareName: name}),
		s.changedLocked(event.ReasonStart),
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionStarted, "daycare", name)
	s.publish(ctx, evts)
	return nil
}

func (s *service) SetPlaying(ctx context.Context, playing bool) {
	s.mu.Lock()
	changed := s.playing != playing
	s.playing = playing
	s.mu.Unlock()

	if changed {
		logger.FromContext(ctx).Info(LogMsgPlayStateChanged, "playing", playing)
	}
}

func (s *service) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Reset clears the saved session and rebuilds a fresh daycare in place.
// Pending spawns from before the reset are invalidated.
func (s *service) Reset(ctx context.Context) {
	log := logger.FromContext(ctx)
	if err := s.repo.Clear(ctx); err != nil {
		log.Error(LogMsgClearFailed, "error", err)
	}

	s.mu.Lock()
	s.generation++
	s.session = s.gen.DefaultSession()
	s.candidate = s.gen.Worker(s.engine.CandidateBaseCost(0))
	s.playing = true
	s.tick = 0
	s.ledger.Reset()
	evts := []event.Event{
		event.New(event.SessionReset, nil),
		s.changedLocked(event.ReasonReset),
	}
	s.mu.Unlock()

	log.Info(LogMsgSessionReset)
	s.publish(ctx, evts)
}

func (s *service) Tick(ctx context.Context) domain.TickResult {
	s.mu.Lock()
	result := s.engine.Tick(&s.session, s.now())
	s.tick++
	result.Tick = s.tick
	s.ledger.Add(result.Departures...)

	evts := make([]event.Event, 0, 2+len(result.Departures)+len(result.Evicted)+len(result.WorkerActions))
	for _, dep := range result.Departures {
		evts = append(evts, event.New(event.DogRetrieved, event.DogRetrievedPayloadV1{Departure: dep}))
	}
	for _, d := range result.Evicted {
		evts = append(evts, event.New(event.DogDeparted, event.DogDepartedPayloadV1{DogID: d.ID, Name: d.Name, Payout: d.PayoutValue()}))
	}
	for _, wa := range result.WorkerActions {
		if idx := s.session.DogIndex(wa.DogID); idx != -1 {
			evts = append(evts, event.NewDogEvent(event.DogInteracted, s.session.Dogs[idx], wa.Action, wa.WorkerID))
		}
	}
	if result.EventStarted != nil {
		evts = append(evts, event.New(event.GameEventStarted, event.GameEventPayloadV1{Event: *result.EventStarted}))
	}
	if result.EventEnded != nil {
		evts = append(evts, event.New(event.GameEventEnded, event.GameEventPayloadV1{Event: *result.EventEnded}))
	}
	evts = append(evts, event.New(event.TickCompleted, event.TickCompletedPayloadV1{
		Tick:       result.Tick,
		MoneyDelta: result.MoneyDelta,
		Snapshot:   s.snapshotLocked(),
	}))
	if tickChangedState(&s.session, result) {
		evts = append(evts, s.changedLocked(event.ReasonTick))
	}
	s.mu.Unlock()

	s.logTick(ctx, result)
	s.publish(ctx, evts)
	return result
}

func (s *service) ReserveSpawn() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.SpawnPending || !s.session.HasRoom() {
		return 0, false
	}
	s.session.SpawnPending = true
	return s.generation, true
}

func (s *service) CompleteSpawn(ctx context.Context, generation uint64) bool {
	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		return false
	}
	s.session.SpawnPending = false
	// Capacity may have been filled or sold while the timer ran
	if !s.session.HasRoom() {
		s.mu.Unlock()
		return false
	}

	dog := s.gen.Dog()
	s.session.Dogs = append(s.session.Dogs, dog)
	evts := []event.Event{
		event.NewDogEvent(event.DogSpawned, dog, "", ""),
		s.changedLocked(event.ReasonSpawn),
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgDogSpawned, "dog_id", dog.ID, "name", dog.Name, "breed", dog.Breed, "trait", dog.Trait)
	s.publish(ctx, evts)
	return true
}

// chargeLocked deducts cost when affordable. Callers hold s.mu.
func (s *service) chargeLocked(cost int) error {
	if s.session.Money < cost {
		return fmt.Errorf("%w: costs $%d, have $%d", domain.ErrInsufficientFunds, cost, s.session.Money)
	}
	s.session.Money -= cost
	return nil
}

func (s *service) changedLocked(reason string) event.Event {
	return event.NewSessionChangedEvent(reason, s.session.Money, len(s.session.Dogs))
}

func (s *service) snapshotLocked() domain.Snapshot {
	c := s.session.Clone()
	if c.Dogs == nil {
		c.Dogs = []domain.Dog{}
	}
	if c.Workers == nil {
		c.Workers = []domain.Worker{}
	}
	return domain.Snapshot{
		Money:       c.Money,
		MaxDogs:     c.MaxDogs,
		Dogs:        c.Dogs,
		Workers:     c.Workers,
		Upgrades:    c.Upgrades,
		ActiveEvent: c.ActiveEvent,
		DaycareName: c.DaycareName,
		HasStarted:  c.HasStarted,
		IsPlaying:   s.playing,
		FeedCost:    s.engine.FeedCost(c.Upgrades),
		SlotCost:    s.engine.SlotCost(c.MaxDogs),
		Tick:        s.tick,
	}
}

// publish delivers events outside the lock so handlers may call back into the service
func (s *service) publish(ctx context.Context, evts []event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range evts {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

func (s *service) logTick(ctx context.Context, result domain.TickResult) {
	log := logger.FromContext(ctx)
	for _, dep := range result.Departures {
		log.Info(LogMsgDogRetrieved,
			"dog_id", dep.DogID,
			"score", dep.Score,
			"success", dep.Success,
			"payout", dep.Payout)
	}
	for _, d := range result.Evicted {
		log.Debug(LogMsgDogDeparted, "dog_id", d.ID, "payout", d.PayoutValue())
	}
	if result.EventStarted != nil {
		log.Info(LogMsgEventStarted, "event", result.EventStarted.Type, slog.Float64("duration", result.EventStarted.Duration))
	}
	if result.EventEnded != nil {
		log.Info(LogMsgEventEnded, "event", result.EventEnded.Type)
	}
}

// tickChangedState reports whether a tick changed anything the save record holds
func tickChangedState(s *domain.Session, r domain.TickResult) bool {
	return len(s.Dogs) > 0 || len(r.Evicted) > 0 || r.MoneyDelta != 0 ||
		r.EventStarted != nil || r.EventEnded != nil
}
