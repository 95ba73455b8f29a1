package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/app/auth"
	"github.com/vidasync/health-api/internal/infra/metrics"
	"github.com/vidasync/health-api/pkg/logging"
	"github.com/vidasync/health-api/pkg/ratelimit"
	"go.uber.org/zap"
)

// Middleware agrega os middlewares da aplicação
type Middleware struct {
	logger              *logging.ContextLogger
	authMiddleware      *AuthMiddleware
	recoveryMiddleware  *RecoveryMiddleware
	metricsMiddleware   *MetricsMiddleware
	tracingMiddleware   *TracingMiddleware
	rateLimitMiddleware *RateLimitMiddleware
}

// NewMiddleware cria o conjunto de middlewares. O limiter pode ser nil
// quando o Redis não está configurado; o rate limit vira no-op.
func NewMiddleware(logger *zap.Logger, authService *auth.Service, apiMetrics *metrics.APIMetrics, limiter *ratelimit.RedisLimiter) *Middleware {
	return &Middleware{
		logger:              logging.NewContextLogger(logger),
		authMiddleware:      NewAuthMiddleware(authService, apiMetrics, logger),
		recoveryMiddleware:  NewRecoveryMiddleware(logger),
		metricsMiddleware:   NewMetricsMiddleware(apiMetrics, logger),
		tracingMiddleware:   NewTracingMiddleware(logger),
		rateLimitMiddleware: NewRateLimitMiddleware(limiter, logger),
	}
}

// Authenticate middleware para autenticação de usuários
func (m *Middleware) Authenticate(c *gin.Context) {
	m.authMiddleware.Authenticate(c)
}

// Recovery middleware para recuperação de pânicos
func (m *Middleware) Recovery() gin.HandlerFunc {
	return m.recoveryMiddleware.Recovery()
}

// Metrics middleware de instrumentação prometheus
func (m *Middleware) Metrics() gin.HandlerFunc {
	return m.metricsMiddleware.Middleware()
}

// Tracing middleware de spans por requisição
func (m *Middleware) Tracing() gin.HandlerFunc {
	return m.tracingMiddleware.Middleware()
}

// SignInRateLimit limita tentativas nos endpoints de credenciais
func (m *Middleware) SignInRateLimit(requestsPerMinute int) gin.HandlerFunc {
	return m.rateLimitMiddleware.Limit(requestsPerMinute)
}

// Logger registra cada requisição concluída com os ids de trace quando
// presentes.
func (m *Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.logger.InfoCtx(c.Request.Context(), "requisição concluída",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
