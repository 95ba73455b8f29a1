package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidasync/health-api/internal/domain/model"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"gorm.io/gorm"
)

// MeasurementRepository implementa repository.MeasurementRepository sobre gorm.
type MeasurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository cria um novo repositório de medições
func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// FindByUserAndType retorna as medições do usuário filtradas pelo
// discriminador de tipo.
func (r *MeasurementRepository) FindByUserAndType(ctx context.Context, userID uint, mtype model.MeasurementType) ([]model.Measurement, error) {
	var measurements []model.Measurement
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, mtype).
		Order("id").
		Find(&measurements).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar medições: %w", err)
	}
	return measurements, nil
}

// FindByID busca uma medição pelo id, sem filtro de dono
func (r *MeasurementRepository) FindByID(ctx context.Context, id uint) (*model.Measurement, error) {
	var measurement model.Measurement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&measurement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &measurement, nil
}

// Create insere uma nova medição; o chamador já resolveu o discriminador
func (r *MeasurementRepository) Create(ctx context.Context, measurement *model.Measurement) error {
	if err := r.db.WithContext(ctx).Create(measurement).Error; err != nil {
		return fmt.Errorf("falha ao criar medição: %w", err)
	}
	return nil
}

// Update sobrescreve os campos mutáveis com escrita condicional por id e
// dono. O discriminador de tipo nunca é atualizado.
func (r *MeasurementRepository) Update(ctx context.Context, measurement *model.Measurement) error {
	result := r.db.WithContext(ctx).Model(&model.Measurement{}).
		Where("id = ? AND user_id = ?", measurement.ID, measurement.UserID).
		Updates(map[string]interface{}{
			"observation": measurement.Observation,
			"morning":     measurement.Morning,
			"afternoon":   measurement.Afternoon,
			"night":       measurement.Night,
		})
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar medição: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete remove fisicamente com a mesma condição de id e dono
func (r *MeasurementRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Measurement{})
	if result.Error != nil {
		return fmt.Errorf("falha ao remover medição: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
