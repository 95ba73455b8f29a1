// Package measurement orquestra o CRUD de medições biométricas. Uma
// única tabela serve as três coleções lógicas (pressão, glicose,
// oxigenação) através do discriminador de tipo resolvido na criação.
package measurement

import (
	"context"

	"github.com/vidasync/health-api/internal/app/ownership"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/domain/repository"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	repo   repository.MeasurementRepository
	logger *zap.Logger
}

func NewService(repo repository.MeasurementRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListByType retorna as medições do usuário para o segmento de rota
// informado. Segmento desconhecido falha com validação tipada; coleção
// vazia falha com ErrNotFound.
func (s *Service) ListByType(ctx context.Context, userID uint, typeSegment string) ([]model.Measurement, error) {
	mtype, err := model.ParseMeasurementType(typeSegment)
	if err != nil {
		return nil, err
	}

	measurements, err := s.repo.FindByUserAndType(ctx, userID, mtype)
	if err != nil {
		return nil, err
	}
	if len(measurements) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return measurements, nil
}

// GetByID carrega uma medição garantindo a posse
func (s *Service) GetByID(ctx context.Context, id, userID uint) (*model.Measurement, error) {
	return ownership.LoadOwned(ctx, s.repo.FindByID, id, userID)
}

// Create insere uma medição com o discriminador resolvido a partir do
// segmento de rota. O tipo é definido exatamente uma vez, aqui.
func (s *Service) Create(ctx context.Context, measurement *model.Measurement, typeSegment string) (*model.Measurement, error) {
	mtype, err := model.ParseMeasurementType(typeSegment)
	if err != nil {
		return nil, err
	}

	measurement.Type = mtype
	if err := s.repo.Create(ctx, measurement); err != nil {
		return nil, err
	}
	return measurement, nil
}

// Update confere a posse e sobrescreve observação e períodos; o
// discriminador de tipo nunca muda em atualizações.
func (s *Service) Update(ctx context.Context, measurement *model.Measurement) (*model.Measurement, error) {
	if _, err := ownership.LoadOwned(ctx, s.repo.FindByID, measurement.ID, measurement.UserID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, measurement); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, measurement.ID)
}

// Delete confere a posse e remove fisicamente
func (s *Service) Delete(ctx context.Context, id, userID uint) error {
	if _, err := ownership.LoadOwned(ctx, s.repo.FindByID, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}
