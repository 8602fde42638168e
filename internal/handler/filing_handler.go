package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstfiler/internal/domain"
	"gstfiler/internal/export"
	"gstfiler/internal/middleware"
	"gstfiler/internal/service"
)

// FilingHandler handles filing management and report endpoints.
type FilingHandler struct {
	filingService service.FilingService
}

// NewFilingHandler creates a new FilingHandler.
func NewFilingHandler(filingService service.FilingService) *FilingHandler {
	return &FilingHandler{filingService: filingService}
}

// Create handles POST /api/v1/filings
func (h *FilingHandler) Create(c *gin.Context) {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context")
		return
	}

	var req struct {
		GSTIN        string          `json:"gstin" binding:"required"`
		CompanyName  string          `json:"company_name"`
		FilingPeriod string          `json:"filing_period" binding:"required"`
		Payload      json.RawMessage `json:"payload" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "gstin, filing_period and payload are required")
		return
	}

	filing, err := h.filingService.Create(c.Request.Context(), &service.CreateFilingInput{
		GSTIN:        req.GSTIN,
		CompanyName:  req.CompanyName,
		FilingPeriod: req.FilingPeriod,
		CreatedBy:    subject,
		Payload:      req.Payload,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, filing)
}

// List handles GET /api/v1/filings
func (h *FilingHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	gstin := c.Query("gstin")

	filings, total, err := h.filingService.List(c.Request.Context(), gstin, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, filings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/filings/:id
func (h *FilingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid filing ID")
		return
	}

	filing, err := h.filingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, filing)
}

// GenerateReport handles GET /api/v1/filings/:id/report
// The report is recomputed from the stored payload on every call; the grid
// projection and headline totals are returned together.
func (h *FilingHandler) GenerateReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid filing ID")
		return
	}

	filing, report, err := h.filingService.GenerateReport(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"filing": filing,
		"report": report,
		"grid":   export.BuildGrid(report),
	})
}

// ExportXLSX handles GET /api/v1/filings/:id/export/xlsx
func (h *FilingHandler) ExportXLSX(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid filing ID")
		return
	}

	filing, report, err := h.filingService.GenerateReport(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	meta := export.WorkbookMeta{
		GSTIN:       filing.GSTIN,
		CompanyName: filing.CompanyName,
		Period:      filing.FilingPeriod,
		Status:      string(filing.Status),
		GeneratedAt: filing.UpdatedAt,
	}
	if filing.GeneratedAt != nil {
		meta.GeneratedAt = *filing.GeneratedAt
	}

	filename := export.BuildFilename(filing.FilingPeriod)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := export.WriteWorkbook(c.Writer, report, meta); err != nil {
		HandleError(c, err)
		return
	}
}

// UpdateStatus handles PATCH /api/v1/filings/:id/status
func (h *FilingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid filing ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	if err := h.filingService.UpdateStatus(c.Request.Context(), id, domain.FilingStatus(req.Status)); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"id": id, "status": req.Status})
}

// Delete handles DELETE /api/v1/filings/:id
func (h *FilingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid filing ID")
		return
	}

	if err := h.filingService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": id})
}
