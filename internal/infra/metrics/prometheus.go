package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIMetrics gerencia métricas relacionadas à API
type APIMetrics struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  *prometheus.GaugeVec
	authFailures    *prometheus.CounterVec
}

var (
	// DefaultRegistry é o registro padrão para métricas
	DefaultRegistry = prometheus.NewRegistry()
	// DefaultRegisterer é o registrador padrão para métricas
	DefaultRegisterer = prometheus.WrapRegistererWith(nil, DefaultRegistry)
	factory           = promauto.With(DefaultRegisterer)
)

// NewAPIMetrics cria e registra métricas do prometheus
func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "health_api_requests_total",
				Help: "Total number of HTTP requests by path, method, and status code",
			},
			[]string{"path", "method", "status"},
		),

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "health_api_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		activeRequests: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "health_api_active_requests",
				Help: "Number of in-flight requests being processed",
			},
			[]string{"path", "method"},
		),

		authFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "health_api_auth_failures_total",
				Help: "Authentication failures by kind (missing, invalid, revoked)",
			},
			[]string{"kind"},
		),
	}
}

// ObserveRequest registra contagem e duração de uma requisição concluída
func (m *APIMetrics) ObserveRequest(path, method string, status int, duration time.Duration) {
	m.requestCounter.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RequestStarted marca uma requisição em andamento
func (m *APIMetrics) RequestStarted(path, method string) {
	m.activeRequests.WithLabelValues(path, method).Inc()
}

// RequestFinished encerra a marcação de requisição em andamento
func (m *APIMetrics) RequestFinished(path, method string) {
	m.activeRequests.WithLabelValues(path, method).Dec()
}

// AuthFailure registra uma falha de autenticação pela variante interna
func (m *APIMetrics) AuthFailure(kind string) {
	m.authFailures.WithLabelValues(kind).Inc()
}
