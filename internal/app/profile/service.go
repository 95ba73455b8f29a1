// Package profile gerencia o perfil 1:1 do paciente. Não há guarda de
// posse aqui: todas as consultas já são chaveadas pelo user_id do
// solicitante.
package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/vidasync/health-api/internal/domain/model"
	"github.com/vidasync/health-api/internal/domain/repository"
	"github.com/vidasync/health-api/pkg/cache"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

type Service struct {
	repo   repository.ProfileRepository
	cache  cache.Cache
	logger *zap.Logger
}

func NewService(repo repository.ProfileRepository, cache cache.Cache, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func cacheKey(userID uint) string {
	return fmt.Sprintf("profile:%d", userID)
}

// Get retorna o perfil do usuário; ausência falha com ErrNotFound.
// Leituras repetidas são servidas do cache até a próxima escrita.
func (s *Service) Get(ctx context.Context, userID uint) (*model.PatientProfile, error) {
	var cached model.PatientProfile
	found, err := s.cache.Get(ctx, cacheKey(userID), &cached)
	if err != nil {
		s.logger.Warn("erro ao consultar cache de perfil", zap.Error(err))
	} else if found {
		return &cached, nil
	}

	profile, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey(userID), profile, cacheTTL); err != nil {
		s.logger.Warn("erro ao armazenar perfil no cache", zap.Error(err))
	}

	return profile, nil
}

// Upsert insere o perfil se ausente ou sobrescreve todos os campos
// mutáveis se presente, atomicamente, chaveado por user_id. Chamadas
// repetidas com o mesmo corpo são idempotentes no conteúdo armazenado.
func (s *Service) Upsert(ctx context.Context, profile *model.PatientProfile) (*model.PatientProfile, error) {
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, cacheKey(profile.UserID)); err != nil {
		s.logger.Warn("erro ao invalidar cache de perfil", zap.Error(err))
	}

	s.logger.Info("perfil gravado", zap.Uint("user_id", profile.UserID))
	return profile, nil
}
