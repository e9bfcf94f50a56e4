package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "data", "daycare.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_InMemory(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	store := NewSessionStore(db)
	assert.NoError(t, store.Ping(context.Background()))
	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSavedSession)
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(openTestDB(t))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSavedSession)

	payout := 135
	first := &domain.SaveData{
		Money:    100,
		MaxDogs:  1,
		Workers:  []domain.Worker{},
		Upgrades: domain.Upgrades{},
		Dogs: []domain.Dog{
			{ID: "dog-1", Name: "Coco", Breed: domain.BreedShibaInu, Trait: domain.TraitLovable, Hunger: 60, Happiness: 61, Energy: 62, State: domain.DogStateRetrieved, TimeRemaining: -0.3, MaxTime: 30, Payout: &payout},
		},
		LastSaveTime: 1767225600000,
	}
	require.NoError(t, store.Save(ctx, first))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// Saving again replaces the single record
	second := *first
	second.Money = 250
	second.DaycareName = "Sit Happens"
	second.HasStarted = true
	require.NoError(t, store.Save(ctx, &second))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, got.Money)
	assert.Equal(t, "Sit Happens", got.DaycareName)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSavedSession)
}

func TestSessionStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daycare.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSessionStore(db).Save(ctx, &domain.SaveData{Money: 77, MaxDogs: 3}))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewSessionStore(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 77, got.Money)
	assert.Equal(t, 3, got.MaxDogs)
}

func TestDepartureStore(t *testing.T) {
	ctx := context.Background()
	store := NewDepartureStore(openTestDB(t))
	at := time.Date(2026, 3, 1, 9, 30, 15, 500, time.UTC)

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)

	require.NoError(t, store.Record(ctx,
		domain.Departure{DogID: "dog-1", Name: "Max", Breed: domain.BreedPoodle, Trait: domain.TraitNone, Score: 60, Success: true, Payout: 90, DepartedAt: at},
		domain.Departure{DogID: "dog-2", Name: "Bear", Breed: domain.BreedHusky, Trait: domain.TraitGlutton, Score: 45, DepartedAt: at.Add(time.Second)},
		domain.Departure{DogID: "dog-3", Name: "Luna", Breed: domain.BreedYorkie, Trait: domain.TraitNone, Score: 80, Success: true, Payout: 240, Event: domain.EventAdoptionDrive, DepartedAt: at.Add(2 * time.Second)},
	))
	require.NoError(t, store.Record(ctx))

	all, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "dog-1", all[0].DogID)
	assert.True(t, all[0].Success)
	assert.False(t, all[1].Success)
	assert.Equal(t, domain.TraitGlutton, all[1].Trait)
	assert.Equal(t, domain.EventAdoptionDrive, all[2].Event)
	assert.True(t, at.Equal(all[0].DepartedAt))

	last, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "dog-2", last[0].DogID)
	assert.Equal(t, "dog-3", last[1].DogID)
}
