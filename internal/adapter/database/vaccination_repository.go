package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidasync/health-api/internal/domain/model"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"gorm.io/gorm"
)

// VaccinationRepository implementa repository.VaccinationRepository sobre gorm.
type VaccinationRepository struct {
	db *gorm.DB
}

// NewVaccinationRepository cria um novo repositório de vacinas
func NewVaccinationRepository(db *gorm.DB) *VaccinationRepository {
	return &VaccinationRepository{db: db}
}

// FindByUser retorna todas as vacinas do usuário
func (r *VaccinationRepository) FindByUser(ctx context.Context, userID uint) ([]model.Vaccination, error) {
	var vaccinations []model.Vaccination
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&vaccinations).Error; err != nil {
		return nil, fmt.Errorf("falha ao buscar vacinas: %w", err)
	}
	return vaccinations, nil
}

// FindByID busca uma vacina pelo id, sem filtro de dono
func (r *VaccinationRepository) FindByID(ctx context.Context, id uint) (*model.Vaccination, error) {
	var vaccination model.Vaccination
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vaccination).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &vaccination, nil
}

// Search filtra por prefixo em name, dose, manufacturer e lot,
// combinados por OR e restritos ao dono.
func (r *VaccinationRepository) Search(ctx context.Context, userID uint, term string) ([]model.Vaccination, error) {
	var vaccinations []model.Vaccination
	pattern := term + "%"
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("name LIKE ? OR dose LIKE ? OR manufacturer LIKE ? OR lot LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("id").
		Find(&vaccinations).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao filtrar vacinas: %w", err)
	}
	return vaccinations, nil
}

// Create insere uma nova vacina
func (r *VaccinationRepository) Create(ctx context.Context, vaccination *model.Vaccination) error {
	if err := r.db.WithContext(ctx).Create(vaccination).Error; err != nil {
		return fmt.Errorf("falha ao criar vacina: %w", err)
	}
	return nil
}

// Update sobrescreve os campos mutáveis com escrita condicional por id e dono
func (r *VaccinationRepository) Update(ctx context.Context, vaccination *model.Vaccination) error {
	result := r.db.WithContext(ctx).Model(&model.Vaccination{}).
		Where("id = ? AND user_id = ?", vaccination.ID, vaccination.UserID).
		Updates(map[string]interface{}{
			"name":         vaccination.Name,
			"dose":         vaccination.Dose,
			"manufacturer": vaccination.Manufacturer,
			"lot":          vaccination.Lot,
		})
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar vacina: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete remove fisicamente com a mesma condição de id e dono
func (r *VaccinationRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Vaccination{})
	if result.Error != nil {
		return fmt.Errorf("falha ao remover vacina: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
