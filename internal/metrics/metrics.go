package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

var togglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "engagement_toggles_total",
		Help: "Total number of settled toggles by edge type and resulting state.",
	},
	[]string{"edge", "state"},
)

// Toggles reports settled toggles to prometheus.
type Toggles struct{}

func (Toggles) ObserveToggle(edge string, state domain.ToggleState) {
	togglesTotal.WithLabelValues(edge, string(state)).Inc()
}
