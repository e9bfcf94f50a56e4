package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/database/filestore"
	"github.com/osse101/DogDaycare_Go/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		StoreDriver:  config.StoreDriverFile,
		SaveFile:     filepath.Join(dir, "save.json"),
		HistoryFile:  filepath.Join(dir, "departures.csv"),
		SQLitePath:   filepath.Join(dir, "daycare.db"),
		HistoryLimit: 10,
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(func() (*config.Config, error) { return cfg, nil })
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedSave(t *testing.T, cfg *config.Config) {
	t.Helper()
	data := &domain.SaveData{
		Money:       12345,
		MaxDogs:     2,
		Workers:     []domain.Worker{},
		Upgrades:    domain.Upgrades{PremiumFood: true, ComfyBed: true},
		Dogs:        []domain.Dog{{ID: "d1", Name: "Rex", Breed: domain.BreedHusky, State: domain.DogStateIdle, Hunger: 80, Happiness: 70, Energy: 60, TimeRemaining: 12.5, MaxTime: 20}},
		DaycareName: "Paws",
		HasStarted:  true,
	}
	require.NoError(t, filestore.NewSessionStore(cfg.SaveFile).Save(context.Background(), data))
}

func TestStatus(t *testing.T) {
	t.Run("no save", func(t *testing.T) {
		out, err := run(t, testConfig(t), "status")
		require.NoError(t, err)
		assert.Equal(t, "No saved daycare\n", out)
	})

	t.Run("saved daycare", func(t *testing.T) {
		cfg := testConfig(t)
		seedSave(t, cfg)

		out, err := run(t, cfg, "status")
		require.NoError(t, err)
		assert.Contains(t, out, "Daycare:  Paws\n")
		assert.Contains(t, out, "Money:    $12,345\n")
		assert.Contains(t, out, "Dogs:     1/2\n")
		assert.Contains(t, out, "Rex")
		assert.Contains(t, out, "Upgrades: premiumFood, comfyBed\n")
		assert.NotContains(t, out, "Event:")
	})
}

func TestReset(t *testing.T) {
	cfg := testConfig(t)
	seedSave(t, cfg)

	_, err := run(t, cfg, "reset")
	assert.ErrorIs(t, err, errResetNotConfirmed)

	out, err := run(t, cfg, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	_, err = filestore.NewSessionStore(cfg.SaveFile).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSavedSession)
}

func TestMigrate_SQLite(t *testing.T) {
	cfg := testConfig(t)

	out, err := run(t, cfg, "--driver", config.StoreDriverSQLite, "migrate", "status")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "pending"))

	out, err = run(t, cfg, "--driver", config.StoreDriverSQLite, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied 1\nApplied 2\n")

	out, err = run(t, cfg, "--driver", config.StoreDriverSQLite, "migrate", "up")
	require.NoError(t, err)
	assert.Equal(t, "Schema is up to date\n", out)
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	_, err := run(t, testConfig(t), "migrate", "up")
	assert.ErrorIs(t, err, errNoMigrations)
}

func TestLedger(t *testing.T) {
	cfg := testConfig(t)
	history := filestore.NewDepartureStore(cfg.HistoryFile)
	require.NoError(t, history.Record(context.Background(),
		domain.Departure{DogID: "a", Name: "Rex", Breed: domain.BreedHusky, Trait: domain.TraitNone, Score: 60, Success: true, Payout: 1500},
		domain.Departure{DogID: "b", Name: "Bo", Breed: domain.BreedPoodle, Trait: domain.TraitNone, Score: 10, Success: false},
	))

	t.Run("summary", func(t *testing.T) {
		out, err := run(t, cfg, "ledger")
		require.NoError(t, err)
		assert.Contains(t, out, "Departures:   2\n")
		assert.Contains(t, out, "Successful:   1 (50.0%)\n")
		assert.Contains(t, out, "Total payout: $1,500\n")
	})

	t.Run("csv", func(t *testing.T) {
		out, err := run(t, cfg, "ledger", "--csv", "-n", "1")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[1], "b,Bo,"))
	})

	t.Run("empty history", func(t *testing.T) {
		out, err := run(t, testConfig(t), "ledger")
		require.NoError(t, err)
		assert.Equal(t, "Departures:   0\n", out)
	})
}
