package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Daycare Metrics
var (
	Ticks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicks,
			Help: HelpTextTicks,
		},
	)

	ActiveDogs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveDogs,
			Help: HelpTextActiveDogs,
		},
	)

	Money = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMoney,
			Help: HelpTextMoney,
		},
	)

	DogsSpawned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDogsSpawned,
			Help: HelpTextDogsSpawned,
		},
	)

	Departures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDepartures,
			Help: HelpTextDepartures,
		},
		[]string{LabelOutcome},
	)

	Payout = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayout,
			Help: HelpTextPayout,
		},
	)

	Interactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInteractions,
			Help: HelpTextInteractions,
		},
		[]string{LabelAction, LabelActor},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelItem},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	GameEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameEvents,
			Help: HelpTextGameEvents,
		},
		[]string{LabelType},
	)

	SessionResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionResets,
			Help: HelpTextSessionResets,
		},
	)

	Autosaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAutosaves,
			Help: HelpTextAutosaves,
		},
		[]string{LabelResult},
	)

	HistoryWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHistoryWrites,
			Help: HelpTextHistoryWrites,
		},
		[]string{LabelResult},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)
)
