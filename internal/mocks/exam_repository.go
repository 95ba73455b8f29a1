package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vidasync/health-api/internal/domain/model"
)

// MockExamRepository é um mock para o repository.ExamRepository
type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) FindByUser(ctx context.Context, userID uint) ([]model.Exam, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Exam), args.Error(1)
}

func (m *MockExamRepository) FindByID(ctx context.Context, id uint) (*model.Exam, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Exam), args.Error(1)
}

func (m *MockExamRepository) Search(ctx context.Context, userID uint, term string) ([]model.Exam, error) {
	args := m.Called(ctx, userID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Exam), args.Error(1)
}

func (m *MockExamRepository) Create(ctx context.Context, exam *model.Exam) error {
	args := m.Called(ctx, exam)
	return args.Error(0)
}

func (m *MockExamRepository) Update(ctx context.Context, exam *model.Exam) error {
	args := m.Called(ctx, exam)
	return args.Error(0)
}

func (m *MockExamRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
