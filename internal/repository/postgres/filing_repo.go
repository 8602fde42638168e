package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstfiler/internal/domain"
	"gstfiler/internal/port"
)

type filingRepo struct {
	db *sqlx.DB
}

// NewFilingRepo creates a new PostgreSQL-backed FilingRepository.
func NewFilingRepo(db *sqlx.DB) port.FilingRepository {
	return &filingRepo{db: db}
}

func (r *filingRepo) Create(ctx context.Context, f *domain.Filing) error {
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	query := `INSERT INTO filings
		(id, gstin, company_name, filing_period, status, payload_key, created_by,
		 total_invoices, total_taxable_value, total_tax, total_invoice_value,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.GSTIN, f.CompanyName, f.FilingPeriod, f.Status, f.PayloadKey, f.CreatedBy,
		f.TotalInvoices, f.TotalTaxableValue, f.TotalTax, f.TotalInvoiceValue,
		f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateFiling
		}
		return fmt.Errorf("filingRepo.Create: %w", err)
	}
	return nil
}

func (r *filingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Filing, error) {
	var f domain.Filing
	err := r.db.GetContext(ctx, &f, "SELECT * FROM filings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFilingNotFound
		}
		return nil, fmt.Errorf("filingRepo.GetByID: %w", err)
	}
	return &f, nil
}

func (r *filingRepo) List(ctx context.Context, gstin string, offset, limit int) ([]domain.Filing, int, error) {
	where := ""
	args := []any{}
	if gstin != "" {
		where = "WHERE gstin = $1"
		args = append(args, gstin)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM filings "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("filingRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM filings %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var filings []domain.Filing
	err = r.db.SelectContext(ctx, &filings, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("filingRepo.List: %w", err)
	}
	return filings, total, nil
}

func (r *filingRepo) UpdateTotals(ctx context.Context, f *domain.Filing) error {
	f.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE filings SET
			status = $1, total_invoices = $2, total_taxable_value = $3,
			total_tax = $4, total_invoice_value = $5, generated_at = $6, updated_at = $7
		 WHERE id = $8`,
		f.Status, f.TotalInvoices, f.TotalTaxableValue,
		f.TotalTax, f.TotalInvoiceValue, f.GeneratedAt, f.UpdatedAt, f.ID)
	if err != nil {
		return fmt.Errorf("filingRepo.UpdateTotals: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFilingNotFound
	}
	return nil
}

func (r *filingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilingStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE filings SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("filingRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFilingNotFound
	}
	return nil
}

func (r *filingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM filings WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("filingRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFilingNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a unique constraint violation
// (SQLSTATE 23505) without depending on driver error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
