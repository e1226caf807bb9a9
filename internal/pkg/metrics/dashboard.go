package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Dashboard bucket labels.
const (
	BucketCentralTotal = "central_total"
	BucketCentralAE    = "central_a_e"
	BucketCentralFM    = "central_f_m"
	BucketCentralNW    = "central_n_w"
	BucketEast         = "east"
	BucketWest         = "west"
)

// DashboardMetrics exposes the last computed completion summary as gauges.
type DashboardMetrics struct {
	completed *prometheus.GaugeVec
}

func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	if reg == nil {
		return &DashboardMetrics{}
	}
	completed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "deliverydesk_completed_deliveries",
		Help: "Completed deliveries per dashboard bucket at the last snapshot.",
	}, []string{"bucket"})
	reg.MustRegister(completed)
	return &DashboardMetrics{completed: completed}
}

// Publish overwrites every bucket gauge.
func (m *DashboardMetrics) Publish(buckets map[string]int) {
	if m == nil || m.completed == nil {
		return
	}
	for bucket, value := range buckets {
		m.completed.WithLabelValues(normalizeLabel(bucket)).Set(float64(value))
	}
}
