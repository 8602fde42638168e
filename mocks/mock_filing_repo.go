package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstfiler/internal/domain"
)

// MockFilingRepo is a mock implementation of port.FilingRepository.
type MockFilingRepo struct {
	mock.Mock
}

func (m *MockFilingRepo) Create(ctx context.Context, f *domain.Filing) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFilingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Filing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Filing), args.Error(1)
}

func (m *MockFilingRepo) List(ctx context.Context, gstin string, offset, limit int) ([]domain.Filing, int, error) {
	args := m.Called(ctx, gstin, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Filing), args.Int(1), args.Error(2)
}

func (m *MockFilingRepo) UpdateTotals(ctx context.Context, f *domain.Filing) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFilingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFilingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
