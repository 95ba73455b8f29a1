package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vidasync/health-api/internal/domain/model"
)

// MockProfileRepository é um mock para o repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUser(ctx context.Context, userID uint) (*model.PatientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientProfile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *model.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
