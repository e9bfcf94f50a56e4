package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "100", 100},
		{"zero", "0", 0},
		{"negative", "-10", -10},
		{"empty falls back", "", 42},
		{"garbage falls back", "not-a-number", 42},
		{"float falls back", "42.5", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DAYCARE_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("DAYCARE_TEST_INT", 42))
		})
	}

	t.Run("unset falls back", func(t *testing.T) {
		assert.Equal(t, 7, getEnvAsInt("DAYCARE_TEST_INT_UNSET", 7))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"minutes", "10m", 10 * time.Minute},
		{"milliseconds", "250ms", 250 * time.Millisecond},
		{"zero disables", "0s", 0},
		{"empty falls back", "", 30 * time.Second},
		{"bare number falls back", "30", 30 * time.Second},
		{"garbage falls back", "soon", 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DAYCARE_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("DAYCARE_TEST_DURATION", 30*time.Second))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "10.0.0.1", []string{"10.0.0.1"}},
		{"trims and drops blanks", " 10.0.0.1 , ,127.0.0.1,", []string{"10.0.0.1", "127.0.0.1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DAYCARE_TEST_LIST", tt.value)
			assert.Equal(t, tt.want, getEnvAsList("DAYCARE_TEST_LIST"))
		})
	}
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvStoreDriver, StoreDriverPostgres)
		t.Setenv(EnvDBMaxConns, "20")
		t.Setenv(EnvDBMaxConnIdleTime, "10m")
		t.Setenv(EnvDBMaxConnLifetime, "1h")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDBMaxConns, "lots")
		t.Setenv(EnvDBMaxConnIdleTime, "invalid")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
	})
}
