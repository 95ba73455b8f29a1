package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/pkg/ratelimit"
	"go.uber.org/zap"
)

// RateLimitMiddleware contém força bruta nos endpoints de credenciais
type RateLimitMiddleware struct {
	limiter *ratelimit.RedisLimiter
	logger  *zap.Logger
}

// NewRateLimitMiddleware cria um novo middleware de rate limit
func NewRateLimitMiddleware(limiter *ratelimit.RedisLimiter, logger *zap.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit limita por IP de origem dentro de uma janela de um minuto.
// Sem limitador configurado o middleware é transparente; erro de
// infraestrutura também deixa a requisição passar (fail-open).
func (m *RateLimitMiddleware) Limit(requestsPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil || requestsPerMinute <= 0 {
			c.Next()
			return
		}

		allowed, remaining, resetAfter, err := m.limiter.Allow(c.Request.Context(), ratelimit.LimitConfig{
			Key:    fmt.Sprintf("signin:%s", c.ClientIP()),
			Limit:  requestsPerMinute,
			Period: time.Minute,
		})
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			m.logger.Warn("rate limit excedido",
				zap.String("client_ip", c.ClientIP()),
				zap.Duration("reset_after", resetAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "muitas tentativas, aguarde antes de tentar novamente",
			})
			return
		}

		c.Next()
	}
}
