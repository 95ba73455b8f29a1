package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidasync/health-api/internal/domain/model"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository implementa repository.ProfileRepository sobre gorm.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository cria um novo repositório de perfis
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByUser busca o perfil do usuário; a chave user_id já delimita o dono
func (r *ProfileRepository) FindByUser(ctx context.Context, userID uint) (*model.PatientProfile, error) {
	var profile model.PatientProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert insere o perfil ou sobrescreve todos os campos mutáveis quando
// já existe uma linha para o user_id. O ON CONFLICT delega ao banco a
// garantia de nunca existirem duas linhas para o mesmo usuário.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.PatientProfile) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "cpf", "birthday", "phone", "blood", "sex", "updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return fmt.Errorf("falha ao gravar perfil: %w", err)
	}

	// Em caso de conflito o gorm não repõe o id gerado originalmente;
	// recarrega para devolver a linha efetivamente armazenada.
	return r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(profile).Error
}
