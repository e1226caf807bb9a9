package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for DeliveryMetrics.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// DeliveryMetrics counts lifecycle commands by operation and outcome.
// Rejected covers validation, not-found and conflict errors; failed covers
// storage and unexpected errors.
type DeliveryMetrics struct {
	commands *prometheus.CounterVec
}

func NewDeliveryMetrics(reg prometheus.Registerer) *DeliveryMetrics {
	if reg == nil {
		return &DeliveryMetrics{}
	}
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deliverydesk_delivery_commands_total",
		Help: "Delivery lifecycle commands by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(commands)
	return &DeliveryMetrics{commands: commands}
}

func (m *DeliveryMetrics) Observe(operation, outcome string) {
	if m == nil || m.commands == nil {
		return
	}
	m.commands.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}
