package measurement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/mocks"
	"github.com/vidasync/health-api/internal/testutils"
	apperrors "github.com/vidasync/health-api/pkg/errors"
)

func TestListByType(t *testing.T) {
	repo := new(mocks.MockMeasurementRepository)
	service := NewService(repo, testutils.TestLogger(t))

	stored := []model.Measurement{
		{ID: 1, UserID: 1, Type: model.MeasurementGlucose, Morning: "98"},
	}
	repo.On("FindByUserAndType", mock.Anything, uint(1), model.MeasurementGlucose).Return(stored, nil)

	got, err := service.ListByType(context.Background(), 1, "glucose")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListByTypeVazia(t *testing.T) {
	repo := new(mocks.MockMeasurementRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByUserAndType", mock.Anything, uint(1), model.MeasurementOxygen).
		Return([]model.Measurement{}, nil)

	_, err := service.ListByType(context.Background(), 1, "oxygen")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Segmento de rota desconhecido é rejeitado antes de tocar o banco;
// nunca vira um registro com tipo indefinido.
func TestListByTypeSegmentoDesconhecido(t *testing.T) {
	repo := new(mocks.MockMeasurementRepository)
	service := NewService(repo, testutils.TestLogger(t))

	_, err := service.ListByType(context.Background(), 1, "cholesterol")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	repo.AssertNotCalled(t, "FindByUserAndType", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate(t *testing.T) {
	repo := new(mocks.MockMeasurementRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Measurement")).Return(nil)

	got, err := service.Create(context.Background(), &model.Measurement{
		UserID:      1,
		Observation: "em jejum",
		Morning:     "120x80",
		Afternoon:   "118x79",
		Night:       "122x81",
	}, "blood-pressure")
	require.NoError(t, err)

	assert.Equal(t, model.MeasurementBloodPressure, got.Type)
}

func TestCreateSegmentoDesconhecido(t *testing.T) {
	repo := new(mocks.MockMeasurementRepository)
	service := NewService(repo, testutils.TestLogger(t))

	_, err := service.Create(context.Background(), &model.Measurement{UserID: 1}, "weight")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Atualização nunca altera o discriminador de tipo, mesmo que o chamador
// preencha o campo.
func TestUpdateNaoTocaTipo(t *testing.T) {
	repo := new(mocks.MockMeasurementRepository)
	service := NewService(repo, testutils.TestLogger(t))

	stored := &model.Measurement{ID: 5, UserID: 1, Type: model.MeasurementGlucose, Morning: "98"}
	reloaded := &model.Measurement{ID: 5, UserID: 1, Type: model.MeasurementGlucose, Morning: "101"}

	repo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Measurement")).Return(nil)
	repo.On("FindByID", mock.Anything, uint(5)).Return(reloaded, nil).Once()

	got, err := service.Update(context.Background(), &model.Measurement{
		ID:      5,
		UserID:  1,
		Type:    model.MeasurementOxygen, // ignorado pela camada de persistência
		Morning: "101",
	})
	require.NoError(t, err)
	assert.Equal(t, model.MeasurementGlucose, got.Type)
}

func TestDeleteOutroDono(t *testing.T) {
	repo := new(mocks.MockMeasurementRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByID", mock.Anything, uint(5)).
		Return(&model.Measurement{ID: 5, UserID: 2}, nil)

	err := service.Delete(context.Background(), 5, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
