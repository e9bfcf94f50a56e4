package bootstrap

import (
	"log/slog"

	"github.com/osse101/DogDaycare_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus. Handlers run
// synchronously on the publishing goroutine, after the service has released
// its lock.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "types", len(event.AllTypes))
	return bus
}
