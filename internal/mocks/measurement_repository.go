package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vidasync/health-api/internal/domain/model"
)

// MockMeasurementRepository é um mock para o repository.MeasurementRepository
type MockMeasurementRepository struct {
	mock.Mock
}

func (m *MockMeasurementRepository) FindByUserAndType(ctx context.Context, userID uint, mtype model.MeasurementType) ([]model.Measurement, error) {
	args := m.Called(ctx, userID, mtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindByID(ctx context.Context, id uint) (*model.Measurement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) Create(ctx context.Context, measurement *model.Measurement) error {
	args := m.Called(ctx, measurement)
	return args.Error(0)
}

func (m *MockMeasurementRepository) Update(ctx context.Context, measurement *model.Measurement) error {
	args := m.Called(ctx, measurement)
	return args.Error(0)
}

func (m *MockMeasurementRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
