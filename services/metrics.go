package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	placesRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "places_requests_total",
			Help: "Total number of upstream Places API requests",
		},
		[]string{"endpoint", "status"},
	)

	placesCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "places_cache_lookups_total",
			Help: "Places cache lookups by result",
		},
		[]string{"result"}, // hit, miss, error
	)

	picksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_picks_total",
			Help: "Random pick and shuffle operations",
		},
		[]string{"kind", "outcome"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "discovery_sessions_active",
			Help: "Number of live discovery sessions",
		},
	)
)

func recordPick(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	picksTotal.WithLabelValues(kind, outcome).Inc()
}
