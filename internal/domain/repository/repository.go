// Package repository define as interfaces de persistência consumidas
// pelos serviços. As implementações gorm vivem em internal/adapter/database;
// ausência de registro é sinalizada com errors.ErrNotFound do pacote de
// erros da aplicação.
package repository

import (
	"context"

	"github.com/vidasync/health-api/internal/domain/model"
)

// UserRepository persiste usuários e as sessões ativas de cada um.
type UserRepository interface {
	// CreateUser insere um novo usuário
	CreateUser(ctx context.Context, user *model.User) error

	// GetUserByEmail busca um usuário pelo email
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID busca um usuário pelo id
	GetUserByID(ctx context.Context, id uint) (*model.User, error)

	// CreateSession registra uma sessão ativa vinculada a um token
	CreateSession(ctx context.Context, session *model.Session) error

	// GetSessionByToken busca a sessão persistida para o token
	GetSessionByToken(ctx context.Context, token string) (*model.Session, error)
}

// ExamRepository persiste exames, sempre delimitados pelo dono.
type ExamRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]model.Exam, error)
	FindByID(ctx context.Context, id uint) (*model.Exam, error)

	// Search filtra por prefixo nos campos textuais, restrito ao dono
	Search(ctx context.Context, userID uint, term string) ([]model.Exam, error)

	Create(ctx context.Context, exam *model.Exam) error

	// Update sobrescreve os campos mutáveis condicionado a id e dono
	Update(ctx context.Context, exam *model.Exam) error

	// Delete remove fisicamente condicionado a id e dono
	Delete(ctx context.Context, id, userID uint) error
}

// VaccinationRepository persiste vacinas, sempre delimitadas pelo dono.
type VaccinationRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]model.Vaccination, error)
	FindByID(ctx context.Context, id uint) (*model.Vaccination, error)
	Search(ctx context.Context, userID uint, term string) ([]model.Vaccination, error)
	Create(ctx context.Context, vaccination *model.Vaccination) error
	Update(ctx context.Context, vaccination *model.Vaccination) error
	Delete(ctx context.Context, id, userID uint) error
}

// MeasurementRepository persiste medições; listagens filtram também pelo
// discriminador de tipo.
type MeasurementRepository interface {
	FindByUserAndType(ctx context.Context, userID uint, mtype model.MeasurementType) ([]model.Measurement, error)
	FindByID(ctx context.Context, id uint) (*model.Measurement, error)
	Create(ctx context.Context, measurement *model.Measurement) error

	// Update nunca toca o discriminador de tipo
	Update(ctx context.Context, measurement *model.Measurement) error
	Delete(ctx context.Context, id, userID uint) error
}

// ProfileRepository persiste o perfil 1:1 do paciente.
type ProfileRepository interface {
	FindByUser(ctx context.Context, userID uint) (*model.PatientProfile, error)

	// Upsert insere ou sobrescreve atomicamente chaveado por user_id
	Upsert(ctx context.Context, profile *model.PatientProfile) error
}
