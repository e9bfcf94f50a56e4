package domain

import "time"

// Session is the whole mutable simulation state of one daycare.
type Session struct {
	Money        int
	MaxDogs      int
	Dogs         []Dog
	Workers      []Worker
	Upgrades     Upgrades
	ActiveEvent  *GameEvent
	DaycareName  string
	HasStarted   bool
	SpawnPending bool
}

// Clone returns a deep copy of s.
func (s *Session) Clone() Session {
	out := *s
	out.Dogs = make([]Dog, len(s.Dogs))
	for i, d := range s.Dogs {
		if d.Payout != nil {
			p := *d.Payout
			d.Payout = &p
		}
		out.Dogs[i] = d
	}
	out.Workers = append([]Worker(nil), s.Workers...)
	if s.ActiveEvent != nil {
		evt := *s.ActiveEvent
		out.ActiveEvent = &evt
	}
	return out
}

// DogIndex returns the position of the dog with id, or -1.
func (s *Session) DogIndex(id string) int {
	for i := range s.Dogs {
		if s.Dogs[i].ID == id {
			return i
		}
	}
	return -1
}

// AssignedDogIndex returns the position of the dog attended by workerID, or -1.
func (s *Session) AssignedDogIndex(workerID string) int {
	for i := range s.Dogs {
		if s.Dogs[i].WorkerID == workerID {
			return i
		}
	}
	return -1
}

// Worker resolves a dog's weak worker reference.
func (s *Session) Worker(id string) (Worker, bool) {
	for _, w := range s.Workers {
		if w.ID == id {
			return w, true
		}
	}
	return Worker{}, false
}

// HasRoom reports whether another dog fits. Retrieved dogs still
// occupy their slot until evicted.
func (s *Session) HasRoom() bool {
	return len(s.Dogs) < s.MaxDogs
}

// SaveData is the persisted snapshot. Field names match the stored record.
type SaveData struct {
	Money        int        `json:"money"`
	MaxDogs      int        `json:"maxDogs"`
	Workers      []Worker   `json:"workers"`
	Upgrades     Upgrades   `json:"upgrades"`
	Dogs         []Dog      `json:"dogs"`
	LastSaveTime int64      `json:"lastSaveTime"` // unix millis
	DaycareName  string     `json:"daycareName,omitempty"`
	HasStarted   bool       `json:"hasStarted,omitempty"`
	ActiveEvent  *GameEvent `json:"activeEvent,omitempty"`
}

// NewSaveData snapshots s at now.
func NewSaveData(s *Session, now time.Time) *SaveData {
	c := s.Clone()
	if c.Workers == nil {
		c.Workers = []Worker{}
	}
	return &SaveData{
		Money:        c.Money,
		MaxDogs:      c.MaxDogs,
		Workers:      c.Workers,
		Upgrades:     c.Upgrades,
		Dogs:         c.Dogs,
		LastSaveTime: now.UnixMilli(),
		DaycareName:  c.DaycareName,
		HasStarted:   c.HasStarted,
		ActiveEvent:  c.ActiveEvent,
	}
}

// Session rebuilds a session from the snapshot. A pending spawn is never
// restored; the spawner re-arms itself from capacity.
func (d *SaveData) Session() Session {
	s := Session{
		Money:       d.Money,
		MaxDogs:     d.MaxDogs,
		Dogs:        d.Dogs,
		Workers:     d.Workers,
		Upgrades:    d.Upgrades,
		ActiveEvent: d.ActiveEvent,
		DaycareName: d.DaycareName,
		HasStarted:  d.HasStarted,
	}
	return s.Clone()
}
