package daycare

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/database/memory"
	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/utils"
)

// recorder collects every published event type
type recorder struct {
	mu    sync.Mutex
	types []event.Type
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, evt.Type)
	return nil
}

func (r *recorder) count(t event.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.types {
		if got == t {
			n++
		}
	}
	return n
}

type fixture struct {
	svc   Service
	store *memory.SessionStore
	rec   *recorder
}

func newFixture(t *testing.T, rng utils.Rand) *fixture {
	t.Helper()
	store := memory.NewSessionStore()
	bus := event.NewMemoryBus()
	rec := &recorder{}
	event.SubscribeAll(bus, event.AllTypes, rec.handle)

	return &fixture{
		svc:   NewService(store, bus, config.DefaultBalance(), rng),
		store: store,
		rec:   rec,
	}
}

// newFixtureWith restores the service from a saved session
func newFixtureWith(t *testing.T, s domain.Session) *fixture {
	t.Helper()
	f := newFixture(t, noEvents)
	require.NoError(t, f.store.Save(context.Background(), domain.NewSaveData(&s, testNow)))
	f.svc.Restore(context.Background())
	return f
}

func TestNewService_DefaultSession(t *testing.T) {
	f := newFixture(t, noEvents)
	snap := f.svc.Snapshot()

	assert.Equal(t, 100, snap.Money)
	assert.Equal(t, 1, snap.MaxDogs)
	require.Len(t, snap.Dogs, 1)
	assert.Equal(t, domain.InitialDogColor, snap.Dogs[0].Color)
	assert.True(t, snap.IsPlaying)
	assert.Equal(t, 1, snap.FeedCost)
	assert.Equal(t, 500, snap.SlotCost)
	assert.NotNil(t, snap.Workers)
	assert.Zero(t, snap.Tick)
}

func TestRestore_NoSavedSessionKeepsDefault(t *testing.T) {
	f := newFixture(t, noEvents)
	f.svc.Restore(context.Background())

	assert.Equal(t, 100, f.svc.Snapshot().Money)
	assert.Equal(t, 1, f.rec.count(event.SessionChanged))
}

type failingStore struct {
	memory.SessionStore
}

func (*failingStore) Load(context.Context) (*domain.SaveData, error) {
	return nil, errors.New("disk on fire")
}

func TestRestore_LoadFailureKeepsDefault(t *testing.T) {
	svc := NewService(&failingStore{}, event.NewMemoryBus(), config.DefaultBalance(), noEvents)
	svc.Restore(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, 100, snap.Money)
	assert.Len(t, snap.Dogs, 1)
}

func TestRestore_RoundTrip(t *testing.T) {
	payout := 90
	evt := domain.NewGameEvent("e1", domain.EventRain, 12.5)
	saved := domain.Session{
		Money:   4321,
		MaxDogs: 3,
		Dogs: []domain.Dog{
			testDog("d1", 55.5, 66.25, 77.75),
			func() domain.Dog {
				d := testDog("d2", 60, 60, 60)
				d.State = domain.DogStateRetrieved
				d.TimeRemaining = -0.5
				d.Payout = &payout
				return d
			}(),
		},
		Workers:     []domain.Worker{{ID: "worker-1", Name: "Alice", Avatar: "A", Cost: 950, Efficiency: 1}},
		Upgrades:    domain.Upgrades{FancyToy: true},
		ActiveEvent: &evt,
		DaycareName: "Paw Palace",
		HasStarted:  true,
	}
	f := newFixtureWith(t, saved)

	snap := f.svc.Snapshot()
	assert.Equal(t, saved.Money, snap.Money)
	assert.Equal(t, saved.MaxDogs, snap.MaxDogs)
	assert.Equal(t, saved.Dogs, snap.Dogs)
	assert.Equal(t, saved.Workers, snap.Workers)
	assert.Equal(t, saved.Upgrades, snap.Upgrades)
	assert.Equal(t, saved.ActiveEvent, snap.ActiveEvent)
	assert.Equal(t, saved.DaycareName, snap.DaycareName)
	assert.True(t, snap.HasStarted)

	// The next candidate is priced for the second hire
	assert.GreaterOrEqual(t, f.svc.Candidate().Cost, 1900)

	data := f.svc.SaveData()
	assert.Equal(t, saved.Dogs, data.Dogs)
	assert.GreaterOrEqual(t, data.LastSaveTime, testNow.UnixMilli())
}

func TestInteract_FeedScenario(t *testing.T) {
	f := newFixtureWith(t, domain.Session{
		Money:   100,
		MaxDogs: 1,
		Dogs:    []domain.Dog{testDog("d1", 80, 80, 80)},
	})
	ctx := context.Background()

	require.NoError(t, f.svc.Interact(ctx, "d1", domain.ActionFeed))

	snap := f.svc.Snapshot()
	assert.Equal(t, 99, snap.Money)
	assert.Equal(t, domain.DogStateEating, snap.Dogs[0].State)
	assert.Equal(t, 1, f.rec.count(event.DogInteracted))

	for range 12 {
		f.svc.Tick(ctx)
	}
	snap = f.svc.Snapshot()
	assert.Equal(t, domain.DogStateIdle, snap.Dogs[0].State)
	assert.Equal(t, 100.0, snap.Dogs[0].Hunger)
	assert.Equal(t, 99, snap.Money)
	assert.Equal(t, uint64(12), snap.Tick)
}

func TestInteract_Errors(t *testing.T) {
	retrieved := testDog("gone", 60, 60, 60)
	retrieved.State = domain.DogStateRetrieved
	f := newFixtureWith(t, domain.Session{
		Money:   0,
		MaxDogs: 2,
		Dogs:    []domain.Dog{testDog("d1", 80, 80, 80), retrieved},
	})
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Interact(ctx, "d1", domain.ActionFeed), domain.ErrInsufficientFunds)
	assert.ErrorIs(t, f.svc.Interact(ctx, "nope", domain.ActionPlay), domain.ErrDogNotFound)
	assert.ErrorIs(t, f.svc.Interact(ctx, "gone", domain.ActionPlay), domain.ErrDogDeparted)
	assert.ErrorIs(t, f.svc.Interact(ctx, "d1", "PET"), domain.ErrUnknownAction)

	snap := f.svc.Snapshot()
	assert.Equal(t, domain.DogStateIdle, snap.Dogs[0].State)
	assert.Equal(t, 0, snap.Money)
	assert.Zero(t, f.rec.count(event.DogInteracted))
}

func TestInteract_OverridesActivityWithoutCost(t *testing.T) {
	dog := testDog("d1", 80, 80, 80)
	dog.State = domain.DogStateEating
	f := newFixtureWith(t, domain.Session{Money: 0, MaxDogs: 1, Dogs: []domain.Dog{dog}})

	require.NoError(t, f.svc.Interact(context.Background(), "d1", domain.ActionSleep))
	assert.Equal(t, domain.DogStateSleeping, f.svc.Snapshot().Dogs[0].State)

	require.NoError(t, f.svc.Interact(context.Background(), "d1", domain.ActionPlay))
	assert.Equal(t, domain.DogStatePlaying, f.svc.Snapshot().Dogs[0].State)
	assert.Equal(t, 0, f.svc.Snapshot().Money)
}

func TestBuyUpgrade_OnlyOnce(t *testing.T) {
	f := newFixture(t, noEvents)
	ctx := context.Background()

	require.NoError(t, f.svc.BuyUpgrade(ctx, domain.UpgradePremiumFood))
	assert.Equal(t, 50, f.svc.Snapshot().Money)
	assert.Equal(t, 5, f.svc.FeedCost())

	err := f.svc.BuyUpgrade(ctx, domain.UpgradePremiumFood)
	assert.ErrorIs(t, err, domain.ErrUpgradeOwned)
	assert.Equal(t, 50, f.svc.Snapshot().Money)

	assert.ErrorIs(t, f.svc.BuyUpgrade(ctx, domain.UpgradeComfyBed), domain.ErrInsufficientFunds)
	assert.ErrorIs(t, f.svc.BuyUpgrade(ctx, "goldenBowl"), domain.ErrUnknownUpgrade)
	assert.Equal(t, 50, f.svc.Snapshot().Money)
	assert.Equal(t, 1, f.rec.count(event.UpgradePurchased))

	catalog := f.svc.UpgradeCatalog()
	require.Len(t, catalog, 3)
	assert.True(t, catalog[0].Owned)
	assert.False(t, catalog[2].Owned)
	assert.Equal(t, 100, catalog[2].Cost)
}

func TestBuySlot_CostScalesWithCapacity(t *testing.T) {
	f := newFixtureWith(t, domain.Session{Money: 2000, MaxDogs: 1})
	ctx := context.Background()

	require.NoError(t, f.svc.BuySlot(ctx))
	assert.Equal(t, 1500, f.svc.Snapshot().Money)
	assert.Equal(t, 2, f.svc.Snapshot().MaxDogs)
	assert.Equal(t, 1000, f.svc.SlotCost())

	require.NoError(t, f.svc.BuySlot(ctx))
	assert.Equal(t, 500, f.svc.Snapshot().Money)
	assert.Equal(t, 3, f.svc.Snapshot().MaxDogs)

	assert.ErrorIs(t, f.svc.BuySlot(ctx), domain.ErrInsufficientFunds)
	assert.Equal(t, 3, f.svc.Snapshot().MaxDogs)
	assert.Equal(t, 500, f.svc.Snapshot().Money)
}

func TestHireWorker(t *testing.T) {
	f := newFixtureWith(t, domain.Session{Money: 2500, MaxDogs: 1})
	ctx := context.Background()

	first := f.svc.Candidate()
	require.NoError(t, f.svc.HireWorker(ctx, first))

	snap := f.svc.Snapshot()
	assert.Equal(t, 2500-first.Cost, snap.Money)
	require.Len(t, snap.Workers, 1)
	assert.Equal(t, first, snap.Workers[0])

	next := f.svc.Candidate()
	assert.NotEqual(t, first.ID, next.ID)
	assert.GreaterOrEqual(t, next.Cost, 1900)

	assert.ErrorIs(t, f.svc.HireWorker(ctx, first), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.svc.HireWorker(ctx, domain.Worker{}), domain.ErrInvalidInput)

	err := f.svc.HireWorker(ctx, next)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Len(t, f.svc.Snapshot().Workers, 1)
	assert.Equal(t, 1, f.rec.count(event.WorkerHired))
}

func TestStartGame(t *testing.T) {
	f := newFixture(t, noEvents)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.StartGame(ctx, "   "), domain.ErrInvalidInput)
	assert.False(t, f.svc.Snapshot().HasStarted)

	require.NoError(t, f.svc.StartGame(ctx, "  Bark Avenue "))
	snap := f.svc.Snapshot()
	assert.True(t, snap.HasStarted)
	assert.Equal(t, "Bark Avenue", snap.DaycareName)
	assert.Equal(t, 1, f.rec.count(event.SessionStarted))
}

func TestSetPlaying(t *testing.T) {
	f := newFixture(t, noEvents)
	ctx := context.Background()

	f.svc.SetPlaying(ctx, false)
	assert.False(t, f.svc.IsPlaying())
	assert.False(t, f.svc.Snapshot().IsPlaying)

	f.svc.SetPlaying(ctx, true)
	assert.True(t, f.svc.IsPlaying())
}

func TestReset(t *testing.T) {
	f := newFixtureWith(t, domain.Session{
		Money:       900,
		MaxDogs:     3,
		Dogs:        []domain.Dog{testDog("d1", 60, 60, 60)},
		DaycareName: "Old",
		HasStarted:  true,
	})
	ctx := context.Background()
	gen, ok := f.svc.ReserveSpawn()
	require.True(t, ok)
	f.svc.SetPlaying(ctx, false)
	f.svc.Tick(ctx)

	f.svc.Reset(ctx)

	_, err := f.store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSavedSession)

	snap := f.svc.Snapshot()
	assert.Equal(t, 100, snap.Money)
	assert.Equal(t, 1, snap.MaxDogs)
	assert.False(t, snap.HasStarted)
	assert.Empty(t, snap.DaycareName)
	assert.True(t, snap.IsPlaying)
	assert.Zero(t, snap.Tick)

	// A spawn reserved before the reset never lands
	assert.False(t, f.svc.CompleteSpawn(ctx, gen))
	assert.Len(t, f.svc.Snapshot().Dogs, 1)
	assert.Equal(t, 1, f.rec.count(event.SessionReset))
}

func TestSpawnReservation(t *testing.T) {
	f := newFixtureWith(t, domain.Session{
		Money:   100,
		MaxDogs: 2,
		Dogs:    []domain.Dog{testDog("d1", 80, 80, 80)},
	})
	ctx := context.Background()

	gen, ok := f.svc.ReserveSpawn()
	require.True(t, ok)
	_, ok = f.svc.ReserveSpawn()
	assert.False(t, ok, "only one spawn may be pending")

	require.True(t, f.svc.CompleteSpawn(ctx, gen))
	snap := f.svc.Snapshot()
	require.Len(t, snap.Dogs, 2)
	assert.Equal(t, domain.GeneratedDogColor, snap.Dogs[1].Color)
	assert.Equal(t, 1, f.rec.count(event.DogSpawned))

	_, ok = f.svc.ReserveSpawn()
	assert.False(t, ok, "no room left")
}

func TestSpawnReservation_RechecksCapacity(t *testing.T) {
	f := newFixtureWith(t, domain.Session{
		Money:   100,
		MaxDogs: 1,
	})
	ctx := context.Background()

	gen, ok := f.svc.ReserveSpawn()
	require.True(t, ok)
	require.True(t, f.svc.CompleteSpawn(ctx, gen))

	// Completing the same reservation again finds no room
	assert.False(t, f.svc.CompleteSpawn(ctx, gen))
	assert.Len(t, f.svc.Snapshot().Dogs, 1)
}

func TestTick_DepartureRecordedAndCredited(t *testing.T) {
	dog := testDog("d1", 60, 60, 60)
	dog.TimeRemaining = 0.1
	f := newFixtureWith(t, domain.Session{Money: 100, MaxDogs: 1, Dogs: []domain.Dog{dog}})
	ctx := context.Background()

	result := f.svc.Tick(ctx)
	require.Len(t, result.Departures, 1)
	assert.Equal(t, uint64(1), result.Tick)
	assert.Equal(t, 1, f.rec.count(event.DogRetrieved))
	require.Len(t, f.svc.Departures(), 1)
	assert.Equal(t, 90, f.svc.Departures()[0].Payout)

	for range 20 {
		f.svc.Tick(ctx)
	}
	snap := f.svc.Snapshot()
	assert.Empty(t, snap.Dogs)
	assert.Equal(t, 190, snap.Money)
	assert.Equal(t, 1, f.rec.count(event.DogDeparted))
	assert.Equal(t, 21, f.rec.count(event.TickCompleted))
}

func TestTick_MoneyNeverNegative(t *testing.T) {
	store := memory.NewSessionStore()
	saved := domain.Session{
		Money:   3,
		MaxDogs: 8,
		Workers: []domain.Worker{
			{ID: "w1", Name: "A", Cost: 1000, Efficiency: 1},
			{ID: "w2", Name: "B", Cost: 1000, Efficiency: 1},
			{ID: "w3", Name: "C", Cost: 1000, Efficiency: 1},
		},
		Upgrades: domain.Upgrades{PremiumFood: true},
	}
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.NewSaveData(&saved, testNow)))
	svc := NewService(store, event.NewMemoryBus(), config.DefaultBalance(), utils.NewRand(99))
	svc.Restore(ctx)

	for i := range 5000 {
		if gen, ok := svc.ReserveSpawn(); ok {
			svc.CompleteSpawn(ctx, gen)
		}
		if i%7 == 0 {
			snap := svc.Snapshot()
			if len(snap.Dogs) > 0 {
				_ = svc.Interact(ctx, snap.Dogs[0].ID, domain.ActionFeed)
			}
		}
		svc.Tick(ctx)
		require.GreaterOrEqual(t, svc.Snapshot().Money, 0, "tick %d", i)
	}
}

func TestService_ConcurrentAccess(t *testing.T) {
	f := newFixtureWith(t, domain.Session{
		Money:   10_000,
		MaxDogs: 4,
		Dogs:    []domain.Dog{testDog("d1", 60, 60, 60), testDog("d2", 60, 60, 60)},
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for range 200 {
			f.svc.Tick(ctx)
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			_ = f.svc.Interact(ctx, "d1", domain.ActionFeed)
			_ = f.svc.Snapshot()
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			if gen, ok := f.svc.ReserveSpawn(); ok {
				f.svc.CompleteSpawn(ctx, gen)
			}
		}
	}()
	wg.Wait()

	assert.Equal(t, uint64(200), f.svc.Snapshot().Tick)
}
