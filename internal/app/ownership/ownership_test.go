package ownership

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidasync/health-api/internal/domain/model"
	apperrors "github.com/vidasync/health-api/pkg/errors"
)

func findExam(record *model.Exam, err error) FindFunc[*model.Exam] {
	return func(ctx context.Context, id uint) (*model.Exam, error) {
		return record, err
	}
}

func TestLoadOwned(t *testing.T) {
	record := &model.Exam{ID: 10, UserID: 1, Name: "hemograma"}

	got, err := LoadOwned(context.Background(), findExam(record, nil), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestLoadOwnedRegistroInexistente(t *testing.T) {
	_, err := LoadOwned(context.Background(), findExam(nil, apperrors.ErrNotFound), 10, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Registro existente de outro dono falha com posse, não com ausência: o
// cliente consegue distinguir 404 de 401.
func TestLoadOwnedOutroDono(t *testing.T) {
	record := &model.Exam{ID: 10, UserID: 2}

	_, err := LoadOwned(context.Background(), findExam(record, nil), 10, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
