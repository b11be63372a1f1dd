package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the ShoreSquad service.
type Metrics struct {
	ForecastRequests *prometheus.CounterVec // labels: source={live,mock}
	CrewSize         prometheus.Gauge
	CleanupsTotal    prometheus.Counter
	EventSignups     prometheus.Counter
	SlotSaveErrors   prometheus.Counter
}

// NewMetrics creates all collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shoresquad",
			Name:      "forecast_requests_total",
			Help:      "Forecast pipeline runs by result source (live or mock).",
		}, []string{"source"}),
		CrewSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shoresquad",
			Name:      "crew_size",
			Help:      "Current number of crew members on the roster.",
		}),
		CleanupsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shoresquad",
			Name:      "cleanups_scheduled_total",
			Help:      "Cleanups scheduled since process start.",
		}),
		EventSignups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shoresquad",
			Name:      "event_signups_total",
			Help:      "Signups recorded for listed cleanup events.",
		}),
		SlotSaveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shoresquad",
			Name:      "slot_save_errors_total",
			Help:      "Best-effort persistence writes that failed.",
		}),
	}

	reg.MustRegister(
		m.ForecastRequests,
		m.CrewSize,
		m.CleanupsTotal,
		m.EventSignups,
		m.SlotSaveErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics backed by a throwaway registry so
// parallel tests never hit "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
