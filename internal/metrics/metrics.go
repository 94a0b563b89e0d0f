package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the Prometheus collectors of the nearby service.
type Metrics struct {
	NearbyRequests     *prometheus.CounterVec
	CandidatesReturned prometheus.Histogram
	PipelineSeconds    prometheus.Histogram
	LocationUpdates    *prometheus.CounterVec
	GeocoderErrors     prometheus.Counter
	GeocoderSeconds    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Registering twice on the same registry panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		NearbyRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "openants_nearby_requests_total",
			Help: "Total number of nearby queries by sort key and outcome.",
		}, []string{"sort", "status"}),
		CandidatesReturned: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "openants_nearby_candidates_returned",
			Help:    "Number of candidates returned by a nearby query.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		PipelineSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "openants_nearby_pipeline_duration_seconds",
			Help:    "Duration of the filter, score and rank pass.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		LocationUpdates: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "openants_location_updates_total",
			Help: "Total number of location samples received by outcome.",
		}, []string{"status"}),
		GeocoderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "openants_geocoder_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		GeocoderSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "openants_geocoder_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}
