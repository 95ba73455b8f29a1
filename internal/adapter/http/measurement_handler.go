package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidasync/health-api/internal/app/measurement"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/infra/middleware"
	"go.uber.org/zap"
)

// MeasurementHandler expõe as três coleções de medições (pressão,
// glicose, oxigenação) sob um único conjunto de rotas parametrizado
// pelo segmento :measurementType. O id do registro vem na query string
// ?measurementId= e não no path.
type MeasurementHandler struct {
	service *measurement.Service
	logger  *zap.Logger
}

// NewMeasurementHandler cria um novo handler de medições
func NewMeasurementHandler(service *measurement.Service, logger *zap.Logger) *MeasurementHandler {
	return &MeasurementHandler{
		service: service,
		logger:  logger,
	}
}

// MeasurementRequest valida o corpo de criação/atualização de medição.
// O tipo nunca vem no corpo: é derivado do segmento de rota na criação
// e imutável depois.
type MeasurementRequest struct {
	Observation string `json:"observation" binding:"required"`
	Morning     string `json:"morning" binding:"required"`
	Afternoon   string `json:"afternoon" binding:"required"`
	Night       string `json:"night" binding:"required"`
}

// Get lista as medições do tipo quando ?measurementId= está ausente, ou
// retorna o registro específico quando presente.
func (h *MeasurementHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	if raw := c.Query("measurementId"); raw != "" {
		id, err := parseID(raw)
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
		return
	}

	measurements, err := h.service.ListByType(c.Request.Context(), userID, c.Param("measurementType"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, measurements)
}

// Create registra uma medição do tipo indicado no path
func (h *MeasurementHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.service.Create(c.Request.Context(), &model.Measurement{
		UserID:      userID,
		Observation: req.Observation,
		Morning:     req.Morning,
		Afternoon:   req.Afternoon,
		Night:       req.Night,
	}, c.Param("measurementType"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update sobrescreve observação e períodos da medição em ?measurementId=
func (h *MeasurementHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Query("measurementId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.service.Update(c.Request.Context(), &model.Measurement{
		ID:          id,
		UserID:      userID,
		Observation: req.Observation,
		Morning:     req.Morning,
		Afternoon:   req.Afternoon,
		Night:       req.Night,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete remove a medição em ?measurementId=
func (h *MeasurementHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	id, err := parseID(c.Query("measurementId"))
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
