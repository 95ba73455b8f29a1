package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/infra/metrics"
	"go.uber.org/zap"
)

// MetricsMiddleware registra contagem, duração e requisições em voo
type MetricsMiddleware struct {
	metrics *metrics.APIMetrics
	logger  *zap.Logger
}

// NewMetricsMiddleware cria um novo middleware de métricas
func NewMetricsMiddleware(apiMetrics *metrics.APIMetrics, logger *zap.Logger) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: apiMetrics,
		logger:  logger,
	}
}

// Middleware instrumenta cada requisição. O label de path usa a rota
// registrada, não a URL crua, para conter a cardinalidade.
func (m *MetricsMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		m.metrics.RequestStarted(path, method)
		start := time.Now()

		c.Next()

		m.metrics.RequestFinished(path, method)
		m.metrics.ObserveRequest(path, method, c.Writer.Status(), time.Since(start))
	}
}
