package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/app/vaccination"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/infra/middleware"
	"go.uber.org/zap"
)

// VaccinationHandler expõe o CRUD de vacinas
type VaccinationHandler struct {
	service *vaccination.Service
	logger  *zap.Logger
}

// NewVaccinationHandler cria um novo handler de vacinas
func NewVaccinationHandler(service *vaccination.Service, logger *zap.Logger) *VaccinationHandler {
	return &VaccinationHandler{
		service: service,
		logger:  logger,
	}
}

// VaccinationRequest valida o corpo de criação/atualização de vacina
type VaccinationRequest struct {
	Name         string `json:"name" binding:"required"`
	Dose         string `json:"dose" binding:"required"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	Lot          string `json:"lot" binding:"required"`
}

// List retorna todas as vacinas do usuário autenticado
func (h *VaccinationHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	vaccinations, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, vaccinations)
}

// Search filtra as vacinas do usuário pelo termo em ?search=
func (h *VaccinationHandler) Search(c *gin.Context) {
	userID := middleware.UserID(c)
	term := c.Query("search")

	vaccinations, err := h.service.Search(c.Request.Context(), term, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, vaccinations)
}

// GetByID retorna uma vacina do usuário autenticado
func (h *VaccinationHandler) GetByID(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Param("vaccinationId"))
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

// Create registra uma nova vacina para o usuário autenticado
func (h *VaccinationHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req VaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.service.Create(c.Request.Context(), &model.Vaccination{
		UserID:       userID,
		Name:         req.Name,
		Dose:         req.Dose,
		Manufacturer: req.Manufacturer,
		Lot:          req.Lot,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update sobrescreve os campos mutáveis de uma vacina do usuário
func (h *VaccinationHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Param("vaccinationId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req VaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.service.Update(c.Request.Context(), &model.Vaccination{
		ID:           id,
		UserID:       userID,
		Name:         req.Name,
		Dose:         req.Dose,
		Manufacturer: req.Manufacturer,
		Lot:          req.Lot,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete remove uma vacina do usuário
func (h *VaccinationHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Param("vaccinationId"))
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
