package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Daycare metric names
const (
	MetricNameTicks         = "daycare_ticks_total"
	MetricNameActiveDogs    = "daycare_active_dogs"
	MetricNameMoney         = "daycare_money"
	MetricNameDogsSpawned   = "daycare_dogs_spawned_total"
	MetricNameDepartures    = "daycare_departures_total"
	MetricNamePayout        = "daycare_payout_total"
	MetricNameInteractions  = "daycare_interactions_total"
	MetricNamePurchases     = "daycare_purchases_total"
	MetricNameMoneySpent    = "daycare_money_spent_total"
	MetricNameGameEvents    = "daycare_game_events_total"
	MetricNameSessionResets = "daycare_session_resets_total"
	MetricNameAutosaves     = "daycare_autosaves_total"
	MetricNameHistoryWrites = "daycare_history_writes_total"
	MetricNameStreamClients = "daycare_stream_clients"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Daycare metric help text
const (
	HelpTextTicks         = "Total number of simulation ticks"
	HelpTextActiveDogs    = "Dogs currently in the daycare, including retrieved dogs awaiting pickup"
	HelpTextMoney         = "Current daycare balance"
	HelpTextDogsSpawned   = "Total number of dogs that arrived"
	HelpTextDepartures    = "Total number of scored departures by outcome"
	HelpTextPayout        = "Total money credited from departures"
	HelpTextInteractions  = "Total number of care actions by action and actor"
	HelpTextPurchases     = "Total number of shop purchases by item"
	HelpTextMoneySpent    = "Total money spent in the shop"
	HelpTextGameEvents    = "Total number of global events started by type"
	HelpTextSessionResets = "Total number of session resets"
	HelpTextAutosaves     = "Total number of autosave attempts by result"
	HelpTextHistoryWrites = "Total number of departure history writes by result"
	HelpTextStreamClients = "Current number of connected stream clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelAction  = "action"
	LabelActor   = "actor"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	ActorPlayer = "player"
	ActorWorker = "worker"

	ResultOK    = "ok"
	ResultError = "error"

	ItemSlot   = "slot"
	ItemWorker = "worker"

	// PathUnmatched labels requests that no route matched
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload has unexpected shape"
)
