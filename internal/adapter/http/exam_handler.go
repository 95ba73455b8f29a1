package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/app/exam"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/infra/middleware"
	"go.uber.org/zap"
)

// ExamHandler expõe o CRUD de exames
type ExamHandler struct {
	service *exam.Service
	logger  *zap.Logger
}

// NewExamHandler cria um novo handler de exames
func NewExamHandler(service *exam.Service, logger *zap.Logger) *ExamHandler {
	return &ExamHandler{
		service: service,
		logger:  logger,
	}
}

// ExamRequest valida o corpo de criação/atualização de exame
type ExamRequest struct {
	Name        string `json:"name" binding:"required"`
	ExamType    string `json:"examType" binding:"required"`
	Description string `json:"description" binding:"required"`
	Local       string `json:"local" binding:"required"`
}

// List retorna todos os exames do usuário autenticado
func (h *ExamHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	exams, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, exams)
}

// Search filtra os exames do usuário pelo termo em ?search=
func (h *ExamHandler) Search(c *gin.Context) {
	userID := middleware.UserID(c)
	term := c.Query("search")

	exams, err := h.service.Search(c.Request.Context(), term, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, exams)
}

// GetByID retorna um exame do usuário autenticado
func (h *ExamHandler) GetByID(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Param("examId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Create registra um novo exame para o usuário autenticado
func (h *ExamHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.service.Create(c.Request.Context(), &model.Exam{
		UserID:      userID,
		Name:        req.Name,
		ExamType:    req.ExamType,
		Description: req.Description,
		Local:       req.Local,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update sobrescreve os campos mutáveis de um exame do usuário
func (h *ExamHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Param("examId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.service.Update(c.Request.Context(), &model.Exam{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		ExamType:    req.ExamType,
		Description: req.Description,
		Local:       req.Local,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete remove um exame do usuário
func (h *ExamHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Param("examId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
