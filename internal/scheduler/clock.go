// Package scheduler drives the simulation clock and other periodic jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/logger"
)

// Ticker is the part of the daycare service the clock drives
type Ticker interface {
	IsPlaying() bool
	Tick(ctx context.Context) domain.TickResult
}

// Clock emits one simulation tick per interval while the game is playing.
// Paused intervals are dropped; there is no catch-up on resume.
type Clock struct {
	target   Ticker
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewClock creates a stopped clock
func NewClock(target Ticker, interval time.Duration) *Clock {
	return &Clock{target: target, interval: interval}
}

// Start begins ticking until ctx is cancelled or Stop is called.
// Starting a running clock is a no-op.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}

	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})
	c.running = true

	logger.FromContext(ctx).Info(LogMsgClockStarted, "interval", c.interval)
	go c.run(ctx, c.done)
}

func (c *Clock) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if c.target.IsPlaying() {
				c.target.Tick(ctx)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Stop halts the clock and waits for an in-flight tick to finish
func (c *Clock) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	cancel()
	<-done
	logger.FromContext(context.Background()).Info(LogMsgClockStopped)
}
