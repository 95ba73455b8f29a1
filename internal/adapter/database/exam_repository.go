package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/vidasync/health-api/internal/domain/model"
	apperrors "github.com/vidasync/health-api/pkg/errors"
	"gorm.io/gorm"
)

// ExamRepository implementa repository.ExamRepository sobre gorm.
type ExamRepository struct {
	db *gorm.DB
}

// NewExamRepository cria um novo repositório de exames
func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

// FindByUser retorna todos os exames do usuário
func (r *ExamRepository) FindByUser(ctx context.Context, userID uint) ([]model.Exam, error) {
	var exams []model.Exam
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("falha ao buscar exames: %w", err)
	}
	return exams, nil
}

// FindByID busca um exame pelo id, sem filtro de dono; a checagem de
// posse acontece na camada de serviço para distinguir 404 de 401.
func (r *ExamRepository) FindByID(ctx context.Context, id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &exam, nil
}

// Search filtra por prefixo em name, exam_type, description e local,
// combinados por OR e restritos ao dono.
func (r *ExamRepository) Search(ctx context.Context, userID uint, term string) ([]model.Exam, error) {
	var exams []model.Exam
	pattern := term + "%"
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("name LIKE ? OR exam_type LIKE ? OR description LIKE ? OR local LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("id").
		Find(&exams).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao filtrar exames: %w", err)
	}
	return exams, nil
}

// Create insere um novo exame
func (r *ExamRepository) Create(ctx context.Context, exam *model.Exam) error {
	if err := r.db.WithContext(ctx).Create(exam).Error; err != nil {
		return fmt.Errorf("falha ao criar exame: %w", err)
	}
	return nil
}

// Update sobrescreve os campos mutáveis com escrita condicional por id e
// dono, fechando a janela entre a checagem de posse e a mutação.
func (r *ExamRepository) Update(ctx context.Context, exam *model.Exam) error {
	result := r.db.WithContext(ctx).Model(&model.Exam{}).
		Where("id = ? AND user_id = ?", exam.ID, exam.UserID).
		Updates(map[string]interface{}{
			"name":        exam.Name,
			"exam_type":   exam.ExamType,
			"description": exam.Description,
			"local":       exam.Local,
		})
	if result.Error != nil {
		return fmt.Errorf("falha ao atualizar exame: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete remove fisicamente com a mesma condição de id e dono
func (r *ExamRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Exam{})
	if result.Error != nil {
		return fmt.Errorf("falha ao remover exame: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
