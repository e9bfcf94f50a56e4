package handler

import "time"

// Route parameters and query parameters
const (
	URLParamDogID   = "dogID"
	QueryParamLimit = "limit"
	QueryParamFrom  = "from"
)

// Departure list bounds
const (
	DefaultListLimit = 50
	MaxListLimit     = 10_000
)

// Departure sources for exports
const (
	SourceSession = "session"
	SourceHistory = "history"
)

// Candidate cache: shown candidates stay hireable by id for this long
const (
	CandidateCacheSize = 128
	CandidateCacheTTL  = 10 * time.Minute
)

// Websocket settings
const (
	WSWriteTimeout = 5 * time.Second
	WSPongWait     = 60 * time.Second
	WSPingInterval = (WSPongWait * 9) / 10
	WSReadLimit    = 512
)

// CSV export
const (
	CSVContentType = "text/csv; charset=utf-8"
	CSVFilename    = "departures.csv"
)
