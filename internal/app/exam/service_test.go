package exam

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

func TestList(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	exams := []model.Exam{
		{ID: 1, UserID: 1, Name: "hemograma"},
		{ID: 2, UserID: 1, Name: "glicemia"},
	}
	repo.On("FindByUser", mock.Anything, uint(1)).Return(exams, nil)

	got, err := service.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// Lista vazia vira ErrNotFound; os clientes dependem do 404 para
// distinguir "nunca cadastrou" de "lista vazia".
func TestListVazia(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByUser", mock.Anything, uint(1)).Return([]model.Exam{}, nil)

	_, err := service.List(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSearchSemResultado(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("Search", mock.Anything, uint(1), "raio").Return([]model.Exam{}, nil)

	_, err := service.Search(context.Background(), "raio", 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Exam{ID: 10, UserID: 1, Name: "hemograma"}, nil)

	got, err := service.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(10), got.ID)
}

func TestGetByIDOutroDono(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Exam{ID: 10, UserID: 2}, nil)

	_, err := service.GetByID(context.Background(), 10, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestUpdate(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	stored := &model.Exam{ID: 10, UserID: 1, Name: "hemograma"}
	updated := &model.Exam{ID: 10, UserID: 1, Name: "hemograma completo"}

	repo.On("FindByID", mock.Anything, uint(10)).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Exam")).Return(nil)
	repo.On("FindByID", mock.Anything, uint(10)).Return(updated, nil).Once()

	got, err := service.Update(context.Background(), &model.Exam{ID: 10, UserID: 1, Name: "hemograma completo"})
	require.NoError(t, err)
	assert.Equal(t, "hemograma completo", got.Name)

	repo.AssertExpectations(t)
}

func TestUpdateOutroDono(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Exam{ID: 10, UserID: 2}, nil)

	_, err := service.Update(context.Background(), &model.Exam{ID: 10, UserID: 1, Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Exam{ID: 10, UserID: 1}, nil)
	repo.On("Delete", mock.Anything, uint(10), uint(1)).Return(nil)

	err := service.Delete(context.Background(), 10, 1)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

// Remoção concorrente entre a checagem e a escrita condicional aparece
// como ErrNotFound, nunca como sucesso silencioso.
func TestDeleteConcorrente(t *testing.T) {
	repo := new(mocks.MockExamRepository)
	service := NewService(repo, testutils.TestLogger(t))

	repo.On("FindByID", mock.Anything, uint(10)).
		Return(&model.Exam{ID: 10, UserID: 1}, nil)
	repo.On("Delete", mock.Anything, uint(10), uint(1)).Return(apperrors.ErrNotFound)

	err := service.Delete(context.Background(), 10, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
