// Package exam orquestra o CRUD de exames com escopo de dono.
package exam

import (
	"context"

	"github.com/vidasync/health-api/internal/app/ownership"
	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/domain/repository"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	repo   repository.ExamRepository
	logger *zap.Logger
}

func NewService(repo repository.ExamRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List retorna os exames do usuário. Coleção vazia é modelada como
// ErrNotFound, nunca como lista vazia com sucesso; clientes existentes
// dependem desse contrato.
func (s *Service) List(ctx context.Context, userID uint) ([]model.Exam, error) {
	exams, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(exams) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return exams, nil
}

// Search filtra os exames do usuário por prefixo nos campos textuais.
// Resultado vazio falha como em List.
func (s *Service) Search(ctx context.Context, term string, userID uint) ([]model.Exam, error) {
	exams, err := s.repo.Search(ctx, userID, term)
	if err != nil {
		return nil, err
	}
	if len(exams) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return exams, nil
}

// GetByID carrega um exame garantindo a posse
func (s *Service) GetByID(ctx context.Context, id, userID uint) (*model.Exam, error) {
	return ownership.LoadOwned(ctx, s.repo.FindByID, id, userID)
}

// Create insere um exame sem checagem de duplicidade
func (s *Service) Create(ctx context.Context, exam *model.Exam) (*model.Exam, error) {
	if err := s.repo.Create(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// Update confere a posse e sobrescreve os campos mutáveis; id e dono
// nunca são sobrescritos. A escrita em si é condicional por id e dono,
// então uma remoção concorrente aparece como ErrNotFound e não como
// mutação perdida.
func (s *Service) Update(ctx context.Context, exam *model.Exam) (*model.Exam, error) {
	if _, err := ownership.LoadOwned(ctx, s.repo.FindByID, exam.ID, exam.UserID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, exam); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, exam.ID)
}

// Delete confere a posse e remove fisicamente
func (s *Service) Delete(ctx context.Context, id, userID uint) error {
	if _, err := ownership.LoadOwned(ctx, s.repo.FindByID, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}
