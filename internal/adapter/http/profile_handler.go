package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/app/profile"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/infra/middleware"
	"go.uber.org/zap"
)

// ProfileHandler expõe o perfil 1:1 do paciente
type ProfileHandler struct {
	service *profile.Service
	logger  *zap.Logger
}

// NewProfileHandler cria um novo handler de perfil
func NewProfileHandler(service *profile.Service, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

// ProfileRequest valida os dados pessoais do paciente. CPF passa pelo
// checksum dos dígitos verificadores e o telefone pelo formato nacional
// de celular; as tags cpf e brphone são registradas na inicialização.
type ProfileRequest struct {
	Name     string    `json:"name" binding:"required,min=3"`
	CPF      string    `json:"cpf" binding:"required,len=11,cpf"`
	Birthday time.Time `json:"birthday" binding:"required"`
	Phone    string    `json:"phone" binding:"required,brphone"`
	Blood    string    `json:"blood" binding:"required"`
	Sex      string    `json:"sex" binding:"required"`
}

// Get retorna o perfil do usuário autenticado
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	p, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreateOrUpdate grava o perfil: cria se ausente, sobrescreve se presente
func (h *ProfileHandler) CreateOrUpdate(c *gin.Context) {
	userID := middleware.UserID(c)

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.service.Upsert(c.Request.Context(), &model.PatientProfile{
		UserID:   userID,
		Name:     req.Name,
		CPF:      req.CPF,
		Birthday: req.Birthday,
		Phone:    req.Phone,
		Blood:    req.Blood,
		Sex:      req.Sex,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
