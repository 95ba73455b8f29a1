package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/app/auth"
	"github.com/vidasync/health-api/internal/infra/metrics"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"go.uber.org/zap"
)

// UserIDKey é a chave do contexto gin onde o id do usuário autenticado
// fica disponível para os handlers.
const UserIDKey = "userID"

// AuthMiddleware resolve o bearer token para o usuário dono da sessão
type AuthMiddleware struct {
	authService *auth.Service
	metrics     *metrics.APIMetrics
	logger      *zap.Logger
}

// NewAuthMiddleware cria uma nova instância do middleware de autenticação
func NewAuthMiddleware(authService *auth.Service, apiMetrics *metrics.APIMetrics, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		metrics:     apiMetrics,
		logger:      logger,
	}
}

// Authenticate exige um bearer token válido com sessão ativa. As três
// variantes internas de falha colapsam em 401 na resposta.
func (m *AuthMiddleware) Authenticate(c *gin.Context) {
	rawToken := extractBearerToken(c.GetHeader("Authorization"))

	userID, err := m.authService.Authenticate(c.Request.Context(), rawToken)
	if err != nil {
		m.observeFailure(err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token inválido ou sessão inexistente"})
		return
	}

	c.Set(UserIDKey, userID)
	c.Next()
}

// UserID recupera o id do usuário autenticado colocado no contexto pelo
// middleware.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(UserIDKey)
	userID, _ := id.(uint)
	return userID
}

// extractBearerToken separa o token do esquema; qualquer formato fora de
// "Bearer <token>" é tratado como token ausente.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}
	return token
}

func (m *AuthMiddleware) observeFailure(err error) {
	if m.metrics == nil {
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrMissingToken):
		m.metrics.AuthFailure("missing")
	case errors.Is(err, apperrors.ErrInvalidToken):
		m.metrics.AuthFailure("invalid")
	case errors.Is(err, apperrors.ErrNoActiveSession):
		m.metrics.AuthFailure("revoked")
	default:
		m.metrics.AuthFailure("other")
		m.logger.Error("falha inesperada na autenticação", zap.Error(err))
	}
}
