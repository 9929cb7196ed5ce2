package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	dialogEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_events_total",
			Help: "Inbound dialogue events by kind.",
		},
		[]string{"kind"},
	)

	dialogTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_transitions_total",
			Help: "State transitions taken by the dialogue machine.",
		},
		[]string{"from", "to"},
	)

	dialogHandlerErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_handler_errors_total",
			Help: "Handler failures by state.",
		},
		[]string{"state"},
	)

	dialogUnknownStates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialog_unknown_states_total",
			Help: "Events dropped because the stored state had no handler.",
		},
		[]string{"state"},
	)

	dialogHandleLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dialog_handle_latency_ms",
			Help:    "End-to-end event handling latency in milliseconds.",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)
)

func init() {
	register(dialogEvents, dialogTransitions, dialogHandlerErrors, dialogUnknownStates, dialogHandleLatency)
}

func ObserveEvent(kind string) {
	dialogEvents.WithLabelValues(kind).Inc()
}

func ObserveTransition(from, to string, took time.Duration) {
	dialogTransitions.WithLabelValues(from, to).Inc()
	dialogHandleLatency.Observe(float64(took.Milliseconds()))
}

func ObserveHandlerError(state string) {
	dialogHandlerErrors.WithLabelValues(state).Inc()
}

func ObserveUnknownState(state string) {
	dialogUnknownStates.WithLabelValues(state).Inc()
}
