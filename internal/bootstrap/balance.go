package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DogDaycare_Go/internal/config"
)

// LoadBalance loads and validates the simulation tuning. An empty path
// keeps the embedded defaults.
func LoadBalance(path string) (config.Balance, error) {
	balance, err := config.LoadBalance(path)
	if err != nil {
		return config.Balance{}, fmt.Errorf("%s: %w", ErrMsgLoadBalance, err)
	}

	source := path
	if source == "" {
		source = "embedded"
	}
	slog.Info(LogMsgBalanceLoaded,
		"source", source,
		"tick_interval", balance.Clock.TickInterval,
		"spawn_delay", balance.Spawn.Delay,
		"starting_money", balance.Economy.StartingMoney)
	return balance, nil
}
