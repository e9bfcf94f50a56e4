package domain

// Worker is a hired caretaker acting autonomously each tick.
// Which dog a worker attends is derived from Dog.WorkerID, never stored here.
type Worker struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar"`
	Cost       int     `json:"cost"`
	Efficiency float64 `json:"efficiency"` // always 1.0 today
}
