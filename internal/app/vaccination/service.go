// Package vaccination orquestra o CRUD de vacinas com escopo de dono.
// O formato é o mesmo do serviço de exames; os dois evoluem juntos.
package vaccination

import (
	"context"

	"github.com/vidasync/health-api/internal/app/ownership"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/domain/repository"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	repo   repository.VaccinationRepository
	logger *zap.Logger
}

func NewService(repo repository.VaccinationRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List retorna as vacinas do usuário; coleção vazia falha com ErrNotFound
func (s *Service) List(ctx context.Context, userID uint) ([]model.Vaccination, error) {
	vaccinations, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(vaccinations) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return vaccinations, nil
}

// Search filtra as vacinas do usuário por prefixo nos campos textuais
func (s *Service) Search(ctx context.Context, term string, userID uint) ([]model.Vaccination, error) {
	vaccinations, err := s.repo.Search(ctx, userID, term)
	if err != nil {
		return nil, err
	}
	if len(vaccinations) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return vaccinations, nil
}

// GetByID carrega uma vacina garantindo a posse
func (s *Service) GetByID(ctx context.Context, id, userID uint) (*model.Vaccination, error) {
	return ownership.LoadOwned(ctx, s.repo.FindByID, id, userID)
}

// Create insere uma vacina sem checagem de duplicidade
func (s *Service) Create(ctx context.Context, vaccination *model.Vaccination) (*model.Vaccination, error) {
	if err := s.repo.Create(ctx, vaccination); err != nil {
		return nil, err
	}
	return vaccination, nil
}

// Update confere a posse e sobrescreve os campos mutáveis via escrita
// condicional por id e dono.
func (s *Service) Update(ctx context.Context, vaccination *model.Vaccination) (*model.Vaccination, error) {
	if _, err := ownership.LoadOwned(ctx, s.repo.FindByID, vaccination.ID, vaccination.UserID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, vaccination); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, vaccination.ID)
}

// Delete confere a posse e remove fisicamente
func (s *Service) Delete(ctx context.Context, id, userID uint) error {
	if _, err := ownership.LoadOwned(ctx, s.repo.FindByID, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}
