package daycare

import (
	"fmt"
	"io"
	"sync"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

// Ledger keeps the most recent departures in a fixed-size ring.
type Ledger struct {
	mu      sync.RWMutex
	entries []domain.Departure
	next    int
	full    bool
}

// NewLedger creates a ledger holding up to size departures
func NewLedger(size int) *Ledger {
	if size <= 0 {
		size = DefaultLedgerSize
	}
	return &Ledger{entries: make([]domain.Departure, size)}
}

// Add records a departure, overwriting the oldest when full
func (l *Ledger) Add(deps ...domain.Departure) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range deps {
		l.entries[l.next] = d
		l.next = (l.next + 1) % len(l.entries)
		if l.next == 0 {
			l.full = true
		}
	}
}

// List returns the recorded departures, oldest first
func (l *Ledger) List() []domain.Departure {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.full {
		return append([]domain.Departure(nil), l.entries[:l.next]...)
	}
	out := make([]domain.Departure, 0, len(l.entries))
	out = append(out, l.entries[l.next:]...)
	return append(out, l.entries[:l.next]...)
}

// Reset drops every entry
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.entries)
	l.next = 0
	l.full = false
}

// LedgerSummary aggregates a set of departures.
type LedgerSummary struct {
	Count        int     `json:"count"`
	Successes    int     `json:"successes"`
	SuccessRate  float64 `json:"success_rate"`
	TotalPayout  int     `json:"total_payout"`
	MeanPayout   float64 `json:"mean_payout"`
	StdDevPayout float64 `json:"stddev_payout"`
	MeanScore    float64 `json:"mean_score"`
}

// Summarize computes counts and payout statistics over deps
func Summarize(deps []domain.Departure) LedgerSummary {
	var s LedgerSummary
	s.Count = len(deps)
	if s.Count == 0 {
		return s
	}

	payouts := make([]float64, len(deps))
	scores := make([]float64, len(deps))
	for i, d := range deps {
		payouts[i] = float64(d.Payout)
		scores[i] = float64(d.Score)
		s.TotalPayout += d.Payout
		if d.Success {
			s.Successes++
		}
	}

	s.SuccessRate = float64(s.Successes) / float64(s.Count)
	s.MeanScore = stat.Mean(scores, nil)
	if s.Count == 1 {
		s.MeanPayout = payouts[0]
		return s
	}
	s.MeanPayout, s.StdDevPayout = stat.MeanStdDev(payouts, nil)
	return s
}

// WriteCSV writes deps as CSV with a header row
func WriteCSV(w io.Writer, deps []domain.Departure) error {
	if deps == nil {
		deps = []domain.Departure{}
	}
	if err := gocsv.Marshal(deps, w); err != nil {
		return fmt.Errorf("failed to write departures csv: %w", err)
	}
	return nil
}

// ReadCSV parses departures previously written by WriteCSV
func ReadCSV(r io.Reader) ([]domain.Departure, error) {
	var deps []domain.Departure
	if err := gocsv.Unmarshal(r, &deps); err != nil {
		return nil, fmt.Errorf("failed to read departures csv: %w", err)
	}
	return deps, nil
}
