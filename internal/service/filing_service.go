package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gstfiler/internal/domain"
	"gstfiler/internal/gstr1"
	"gstfiler/internal/port"
)

// CreateFilingInput is the DTO for creating a filing.
type CreateFilingInput struct {
	GSTIN        string
	CompanyName  string
	FilingPeriod string
	CreatedBy    string
	Payload      json.RawMessage
}

// FilingService defines the filing management contract. All report figures
// come from the normalization engine; this service only orchestrates
// storage, persistence and report generation.
type FilingService interface {
	Create(ctx context.Context, input *CreateFilingInput) (*domain.Filing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Filing, error)
	List(ctx context.Context, gstin string, offset, limit int) ([]domain.Filing, int, error)
	GenerateReport(ctx context.Context, id uuid.UUID) (*domain.Filing, *gstr1.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type filingService struct {
	repo            port.FilingRepository
	storage         port.ObjectStorage
	engine          *gstr1.Engine
	maxPayloadBytes int64
}

// NewFilingService creates a new FilingService implementation.
func NewFilingService(repo port.FilingRepository, storage port.ObjectStorage, engine *gstr1.Engine, maxPayloadMB int64) FilingService {
	return &filingService{
		repo:            repo,
		storage:         storage,
		engine:          engine,
		maxPayloadBytes: maxPayloadMB * 1024 * 1024,
	}
}

func (s *filingService) Create(ctx context.Context, input *CreateFilingInput) (*domain.Filing, error) {
	if s.maxPayloadBytes > 0 && int64(len(input.Payload)) > s.maxPayloadBytes {
		return nil, domain.ErrPayloadTooLarge
	}
	if !json.Valid(input.Payload) {
		return nil, domain.ErrInvalidPayload
	}

	filing := &domain.Filing{
		ID:           uuid.New(),
		GSTIN:        input.GSTIN,
		CompanyName:  input.CompanyName,
		FilingPeriod: input.FilingPeriod,
		Status:       domain.FilingStatusDraft,
		CreatedBy:    input.CreatedBy,
	}
	filing.PayloadKey = fmt.Sprintf("payloads/%s/%s/%s.json", filing.GSTIN, filing.FilingPeriod, filing.ID)

	log.Printf("filingService.Create: storing payload for filing %s (%s %s, %d bytes)",
		filing.ID, filing.GSTIN, filing.FilingPeriod, len(input.Payload))

	if err := s.storage.Upload(ctx, filing.PayloadKey, bytes.NewReader(input.Payload), "application/json"); err != nil {
		log.Printf("filingService.Create: payload upload failed for filing %s: %v", filing.ID, err)
		return nil, fmt.Errorf("storing payload: %w", domain.ErrUploadFailed)
	}

	if err := s.repo.Create(ctx, filing); err != nil {
		return nil, err
	}
	return filing, nil
}

func (s *filingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Filing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *filingService) List(ctx context.Context, gstin string, offset, limit int) ([]domain.Filing, int, error) {
	return s.repo.List(ctx, gstin, offset, limit)
}

// GenerateReport fetches the stored payload, runs the normalization engine
// and persists the reconciled totals. The report itself is never persisted;
// reprocessing the same payload always yields the same report.
func (s *filingService) GenerateReport(ctx context.Context, id uuid.UUID) (*domain.Filing, *gstr1.Report, error) {
	filing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	payload, err := s.storage.Download(ctx, filing.PayloadKey)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching payload for filing %s: %w", id, err)
	}

	report, err := s.engine.Process(ctx, payload)
	if err != nil {
		return nil, nil, fmt.Errorf("processing payload for filing %s: %w", id, err)
	}

	now := time.Now().UTC()
	filing.Status = domain.FilingStatusGenerated
	filing.GeneratedAt = &now
	filing.TotalInvoices = report.Totals.InvoiceCount
	filing.TotalTaxableValue = report.Totals.TaxableValue
	filing.TotalTax = report.Totals.TaxAmount
	filing.TotalInvoiceValue = report.Totals.InvoiceValue

	if err := s.repo.UpdateTotals(ctx, filing); err != nil {
		return nil, nil, err
	}

	log.Printf("filingService.GenerateReport: filing %s generated (%d invoices, %.2f taxable)",
		filing.ID, filing.TotalInvoices, filing.TotalTaxableValue)
	return filing, report, nil
}

func (s *filingService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilingStatus) error {
	if !domain.ValidFilingStatuses[status] {
		return fmt.Errorf("status %q: %w", status, domain.ErrInvalidStatus)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *filingService) Delete(ctx context.Context, id uuid.UUID) error {
	filing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Payload removal is best-effort; the filings row is the source of truth.
	if err := s.storage.Delete(ctx, filing.PayloadKey); err != nil {
		log.Printf("filingService.Delete: failed to delete payload %s: %v", filing.PayloadKey, err)
	}

	log.Printf("filingService.Delete: deleting filing %s", id)
	return s.repo.Delete(ctx, id)
}
