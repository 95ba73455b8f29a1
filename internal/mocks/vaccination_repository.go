package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vidasync/health-api/internal/domain/model"
)

// MockVaccinationRepository é um mock para o repository.VaccinationRepository
type MockVaccinationRepository struct {
	mock.Mock
}

func (m *MockVaccinationRepository) FindByUser(ctx context.Context, userID uint) ([]model.Vaccination, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) FindByID(ctx context.Context, id uint) (*model.Vaccination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) Search(ctx context.Context, userID uint, term string) ([]model.Vaccination, error) {
	args := m.Called(ctx, userID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) Create(ctx context.Context, vaccination *model.Vaccination) error {
	args := m.Called(ctx, vaccination)
	return args.Error(0)
}

func (m *MockVaccinationRepository) Update(ctx context.Context, vaccination *model.Vaccination) error {
	args := m.Called(ctx, vaccination)
	return args.Error(0)
}

func (m *MockVaccinationRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
