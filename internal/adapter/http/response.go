package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"go.uber.org/zap"
)

// respondError traduz a taxonomia de falhas dos serviços para o contrato
// HTTP: posse e autenticação viram 401, validação 400, colisão de email
// 409 e o resto 404. Erros não mapeados são logados antes de virar 404.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperrors.HTTPStatus(err)

	if status == http.StatusNotFound {
		logger.Debug("falha traduzida para 404",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// bindError responde 400 para corpo que falhou no binding/validação
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "dados inválidos: " + err.Error()})
}

// parseID converte um id vindo de path ou query. Id não numérico é
// indistinguível de registro inexistente para o cliente (404), mantendo
// o contrato da API original.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.ErrNotFound
	}
	return uint(id), nil
}
