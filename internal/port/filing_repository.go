package port

import (
	"context"

	"github.com/google/uuid"

	"gstfiler/internal/domain"
)

// FilingRepository defines persistence operations for filings.
type FilingRepository interface {
	Create(ctx context.Context, f *domain.Filing) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Filing, error)
	List(ctx context.Context, gstin string, offset, limit int) ([]domain.Filing, int, error)
	UpdateTotals(ctx context.Context, f *domain.Filing) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
