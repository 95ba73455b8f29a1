package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/mocks"
	"github.com/vidasync/health-api/internal/testutils"
	"github.com/vidasync/health-api/pkg/cache"
	apperrors "github.com/vidasync/health-api/pkg/errors"
)

func memoryCacheForTest(t *testing.T) cache.Cache {
	return cache.NewMemoryCache(time.Minute, time.Minute, testutils.TestLogger(t))
}

func TestGetAusente(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	service := NewService(repo, memoryCacheForTest(t), testutils.TestLogger(t))

	repo.On("FindByUser", mock.Anything, uint(1)).Return(nil, apperrors.ErrNotFound)

	_, err := service.Get(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Segunda leitura vem do cache; o repositório é consultado uma única vez.
func TestGetUsaCache(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	service := NewService(repo, memoryCacheForTest(t), testutils.TestLogger(t))

	stored := &model.PatientProfile{ID: 1, UserID: 1, Name: "Maria da Silva", CPF: "52998224725"}
	repo.On("FindByUser", mock.Anything, uint(1)).Return(stored, nil).Once()

	first, err := service.Get(context.Background(), 1)
	require.NoError(t, err)

	second, err := service.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	repo.AssertNumberOfCalls(t, "FindByUser", 1)
}

// Upsert invalida o cache: a leitura seguinte volta ao repositório e
// enxerga o conteúdo novo.
func TestUpsertInvalidaCache(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	service := NewService(repo, memoryCacheForTest(t), testutils.TestLogger(t))

	antigo := &model.PatientProfile{ID: 1, UserID: 1, Name: "Maria"}
	novo := &model.PatientProfile{ID: 1, UserID: 1, Name: "Maria da Silva"}

	repo.On("FindByUser", mock.Anything, uint(1)).Return(antigo, nil).Once()
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PatientProfile")).Return(nil)
	repo.On("FindByUser", mock.Anything, uint(1)).Return(novo, nil).Once()

	_, err := service.Get(context.Background(), 1)
	require.NoError(t, err)

	_, err = service.Upsert(context.Background(), novo)
	require.NoError(t, err)

	got, err := service.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Maria da Silva", got.Name)

	repo.AssertNumberOfCalls(t, "FindByUser", 2)
}

func TestUpsertPropagaErro(t *testing.T) {
	repo := new(mocks.MockProfileRepository)
	mockCache := new(mocks.MockCache)
	service := NewService(repo, mockCache, testutils.TestLogger(t))

	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PatientProfile")).
		Return(assert.AnError)

	_, err := service.Upsert(context.Background(), &model.PatientProfile{UserID: 1})
	assert.Error(t, err)

	mockCache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
