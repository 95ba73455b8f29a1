package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/app/auth"
	"go.uber.org/zap"
)

// AuthHandler expõe cadastro e login
type AuthHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuthHandler cria um novo handler de autenticação
func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// SignUpRequest é o corpo do cadastro; a senha é opcional para permitir
// contas sem senha.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// SignUp registra um novo usuário
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SignInRequest é o corpo do login
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn autentica e devolve o token de sessão
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
