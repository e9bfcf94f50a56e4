package scheduler

// Log messages
const (
	LogMsgClockStarted = "Simulation clock started"
	LogMsgClockStopped = "Simulation clock stopped"
	LogMsgJobSkipped   = "Scheduled job skipped, worker queue full"
)
