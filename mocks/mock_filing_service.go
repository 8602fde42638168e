package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstfiler/internal/domain"
	"gstfiler/internal/gstr1"
	"gstfiler/internal/service"
)

// MockFilingService is a mock implementation of service.FilingService.
type MockFilingService struct {
	mock.Mock
}

func (m *MockFilingService) Create(ctx context.Context, input *service.CreateFilingInput) (*domain.Filing, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Filing), args.Error(1)
}

func (m *MockFilingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Filing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Filing), args.Error(1)
}

func (m *MockFilingService) List(ctx context.Context, gstin string, offset, limit int) ([]domain.Filing, int, error) {
	args := m.Called(ctx, gstin, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Filing), args.Int(1), args.Error(2)
}

func (m *MockFilingService) GenerateReport(ctx context.Context, id uuid.UUID) (*domain.Filing, *gstr1.Report, error) {
	args := m.Called(ctx, id)
	var filing *domain.Filing
	if args.Get(0) != nil {
		filing = args.Get(0).(*domain.Filing)
	}
	var report *gstr1.Report
	if args.Get(1) != nil {
		report = args.Get(1).(*gstr1.Report)
	}
	return filing, report, args.Error(2)
}

func (m *MockFilingService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFilingService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
