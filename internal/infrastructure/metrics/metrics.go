package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dexinfo.com/internal/domain/entity"
)

// Metrics holds the Prometheus metrics of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	subgraphRequests *prometheus.CounterVec
	subgraphDuration *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// NewMetrics creates and registers the metrics
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		subgraphRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dexinfo_subgraph_requests_total",
			Help: "Total number of subgraph queries, labeled by chain and result.",
		}, []string{"chain", "result"}),
		subgraphDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dexinfo_subgraph_request_duration_seconds",
			Help:    "Time taken by a subgraph query.",
			Buckets: prometheus.DefBuckets,
		}, []string{"chain"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dexinfo_cache_lookups_total",
			Help: "Total number of transaction cache lookups, labeled by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dexinfo_http_requests_total",
			Help: "Total number of HTTP requests, labeled by route and status.",
		}, []string{"path", "status"}),
	}
	reg.MustRegister(m.subgraphRequests, m.subgraphDuration, m.cacheLookups, m.httpRequests)
	return m
}

// ObserveSubgraphRequest records the outcome and latency of one subgraph query
func (m *Metrics) ObserveSubgraphRequest(chainID entity.ChainID, took time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.subgraphRequests.WithLabelValues(chainID.String(), result).Inc()
	m.subgraphDuration.WithLabelValues(chainID.String()).Observe(took.Seconds())
}

// ObserveCacheLookup records a cache lookup: hit, miss or error
func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest records a served request
func (m *Metrics) ObserveHTTPRequest(path string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// Handler serves the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
