package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// clientWindow is one client's budget. The window opens on the client's
// first request and closes ClientWindow later.
type clientWindow struct {
	opened     time.Time
	requests   int
	failedAuth int
}

// ClientGuard throttles clients per address and flags repeated auth failures.
// Tracked clients are bounded; idle ones age out of the cache.
type ClientGuard struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
	limit   int
	now     func() time.Time
}

// NewClientGuard returns a guard allowing limit requests per client window
func NewClientGuard(limit int) *ClientGuard {
	return &ClientGuard{
		clients: expirable.NewLRU[string, *clientWindow](MaxTrackedClients, nil, ClientWindow),
		limit:   limit,
		now:     time.Now,
	}
}

// window returns the live window for ip, opening a fresh one when needed.
// Caller must hold the mutex.
func (g *ClientGuard) window(ip string) *clientWindow {
	now := g.now()
	w, ok := g.clients.Get(ip)
	if !ok || now.Sub(w.opened) >= ClientWindow {
		w = &clientWindow{opened: now}
		g.clients.Add(ip, w)
	}
	return w
}

// Allow counts a request from ip and reports whether it is within budget
func (g *ClientGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.window(ip)
	w.requests++
	if w.requests <= g.limit {
		return true
	}
	if (w.requests-g.limit)%HighRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// FailedAuth records a rejected key from ip
func (g *ClientGuard) FailedAuth(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.window(ip)
	w.failedAuth++
	if w.failedAuth == FailedAuthAlertCount || w.failedAuth%(FailedAuthAlertCount*10) == 0 {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
}

// Requests returns the requests counted for ip in its current window
func (g *ClientGuard) Requests(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if w, ok := g.clients.Peek(ip); ok && g.now().Sub(w.opened) < ClientWindow {
		return w.requests
	}
	return 0
}
