package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

func sampleSave() *domain.SaveData {
	payout := 90
	evt := domain.NewGameEvent("e1", domain.EventHeatwave, 7.5)
	return &domain.SaveData{
		Money:   321,
		MaxDogs: 2,
		Workers: []domain.Worker{{ID: "worker-1", Name: "Alice", Avatar: "A", Cost: 980, Efficiency: 1}},
		Upgrades: domain.Upgrades{
			PremiumFood: true,
		},
		Dogs: []domain.Dog{
			{ID: "dog-1", Name: "Max", Breed: domain.BreedPoodle, Trait: domain.TraitLazy, Hunger: 61.2, Happiness: 70, Energy: 80.05, State: domain.DogStateEating, TimeRemaining: 12.3, MaxTime: 30, WorkerID: "worker-1"},
			{ID: "dog-2", Name: "Bear", Breed: domain.BreedHusky, Trait: domain.TraitNone, Hunger: 60, Happiness: 60, Energy: 60, State: domain.DogStateRetrieved, TimeRemaining: -1, MaxTime: 30, Payout: &payout},
		},
		LastSaveTime: 1767225600000,
		DaycareName:  "Wag Station",
		HasStarted:   true,
		ActiveEvent:  &evt,
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves", "daycare.json")
	store := NewSessionStore(path)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSavedSession)

	want := sampleSave()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = os.Stat(path + TempSuffix)
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(filepath.Join(t.TempDir(), "daycare.json"))

	require.NoError(t, store.Clear(ctx), "clearing an empty store")
	require.NoError(t, store.Save(ctx, sampleSave()))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSavedSession)
}

func TestSessionStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daycare.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), FilePerm))

	_, err := NewSessionStore(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSavedSession)
}

func TestSessionStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(filepath.Join(t.TempDir(), "daycare.json"))

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(money int) {
			defer wg.Done()
			data := sampleSave()
			data.Money = money
			assert.NoError(t, store.Save(ctx, data))
		}(i)
	}
	wg.Wait()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Money, 0)
	assert.Less(t, got.Money, 10)
}

func TestSessionStore_Ping(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "nested", "daycare.json"))
	assert.NoError(t, store.Ping(context.Background()))
}

func TestDepartureStore(t *testing.T) {
	ctx := context.Background()
	store := NewDepartureStore(filepath.Join(t.TempDir(), "departures.csv"))
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	recent, err := store.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, recent)

	require.NoError(t, store.Record(ctx,
		domain.Departure{DogID: "dog-1", Name: "Max", Breed: domain.BreedPoodle, Trait: domain.TraitNone, Score: 60, Success: true, Payout: 90, DepartedAt: at},
		domain.Departure{DogID: "dog-2", Name: "Bear", Breed: domain.BreedHusky, Trait: domain.TraitLovable, Score: 40, DepartedAt: at},
	))
	require.NoError(t, store.Record(ctx,
		domain.Departure{DogID: "dog-3", Name: "Luna", Breed: domain.BreedYorkie, Trait: domain.TraitNone, Score: 70, Success: true, Payout: 210, Event: domain.EventAdoptionDrive, DepartedAt: at},
	))
	require.NoError(t, store.Record(ctx))

	all, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "dog-1", all[0].DogID)
	assert.Equal(t, 90, all[0].Payout)
	assert.True(t, all[0].Success)
	assert.Equal(t, domain.EventAdoptionDrive, all[2].Event)
	assert.True(t, at.Equal(all[2].DepartedAt))

	last, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "dog-3", last[0].DogID)
}
