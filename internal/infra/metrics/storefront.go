package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Orders created by fulfillment kind.",
		},
		[]string{"fulfillment"},
	)

	certificateActivations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_certificate_activations_total",
			Help: "Certificate activation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	supportTickets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_support_tickets_total",
			Help: "Support tickets created by reason tag.",
		},
		[]string{"reason"},
	)
)

func init() {
	register(ordersCreated, certificateActivations, supportTickets)
}

func ObserveOrderCreated(fulfillment string) {
	ordersCreated.WithLabelValues(fulfillment).Inc()
}

func ObserveActivation(outcome string) {
	certificateActivations.WithLabelValues(outcome).Inc()
}

func ObserveTicket(reason string) {
	supportTickets.WithLabelValues(reason).Inc()
}
