package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/event"
)

// MockSpawner for testing
type MockSpawner struct {
	mock.Mock
}

func (m *MockSpawner) ReserveSpawn() (uint64, bool) {
	args := m.Called()
	return args.Get(0).(uint64), args.Bool(1)
}

func (m *MockSpawner) CompleteSpawn(ctx context.Context, generation uint64) bool {
	args := m.Called(ctx, generation)
	return args.Bool(0)
}

// fakeSpawner models a daycare with a fixed capacity
type fakeSpawner struct {
	mu         sync.Mutex
	capacity   int
	dogs       int
	pending    bool
	generation uint64
	completed  chan struct{}
}

func (f *fakeSpawner) ReserveSpawn() (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending || f.dogs >= f.capacity {
		return 0, false
	}
	f.pending = true
	return f.generation, true
}

func (f *fakeSpawner) CompleteSpawn(_ context.Context, generation uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	defer func() { f.completed <- struct{}{} }()
	if generation != f.generation {
		return false
	}
	f.pending = false
	if f.dogs >= f.capacity {
		return false
	}
	f.dogs++
	return true
}

func (f *fakeSpawner) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dogs
}

func TestSpawnWorker_SpawnsAfterDelay(t *testing.T) {
	spawner := new(MockSpawner)
	done := make(chan struct{})
	spawner.On("ReserveSpawn").Return(uint64(3), true).Once()
	spawner.On("CompleteSpawn", mock.Anything, uint64(3)).Return(true).Run(func(mock.Arguments) { close(done) }).Once()

	w := NewSpawnWorker(spawner, 10*time.Millisecond)
	w.Start()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for spawn")
	}
	require.NoError(t, w.Shutdown(context.Background()))
	spawner.AssertExpectations(t)
}

func TestSpawnWorker_NoRoomSchedulesNothing(t *testing.T) {
	spawner := new(MockSpawner)
	spawner.On("ReserveSpawn").Return(uint64(0), false)

	w := NewSpawnWorker(spawner, time.Millisecond)
	w.Start()

	assert.Zero(t, w.pending())
	require.NoError(t, w.Shutdown(context.Background()))
	spawner.AssertNotCalled(t, "CompleteSpawn", mock.Anything, mock.Anything)
}

func TestSpawnWorker_FillsCapacityThroughEvents(t *testing.T) {
	spawner := &fakeSpawner{capacity: 3, completed: make(chan struct{}, 10)}
	bus := event.NewMemoryBus()
	w := NewSpawnWorker(spawner, 5*time.Millisecond)
	w.Subscribe(bus)

	// Each completed arrival announces a change, which schedules the next
	go func() {
		for range spawner.completed {
			_ = bus.Publish(context.Background(), event.NewSessionChangedEvent(event.ReasonSpawn, 0, spawner.count()))
		}
	}()
	w.Start()

	assert.Eventually(t, func() bool { return spawner.count() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Shutdown(context.Background()))
	close(spawner.completed)
	assert.Equal(t, 3, spawner.count())
}

func TestSpawnWorker_ShutdownCancelsPending(t *testing.T) {
	spawner := new(MockSpawner)
	spawner.On("ReserveSpawn").Return(uint64(1), true)

	w := NewSpawnWorker(spawner, time.Hour)
	w.Start()
	assert.Equal(t, 1, w.pending())

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Zero(t, w.pending())

	// Events after shutdown are ignored
	w.Start()
	assert.Zero(t, w.pending())
	require.NoError(t, w.Shutdown(context.Background()))
	spawner.AssertNumberOfCalls(t, "ReserveSpawn", 1)
	spawner.AssertNotCalled(t, "CompleteSpawn", mock.Anything, mock.Anything)
}
