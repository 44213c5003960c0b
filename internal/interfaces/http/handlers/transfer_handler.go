package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "vendor-desk.backend/internal/domain/errors"
	"vendor-desk.backend/internal/interfaces/http/response"
	"vendor-desk.backend/internal/usecases"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TransferHandler handles CSV/XLSX import and export endpoints
type TransferHandler struct {
	transferUsecase *usecases.TransferUsecase
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferUsecase *usecases.TransferUsecase) *TransferHandler {
	return &TransferHandler{transferUsecase: transferUsecase}
}

// ImportCSV merges an uploaded CSV into the directory
// POST /api/v1/vendors/import
func (h *TransferHandler) ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Missing file upload"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Cannot open uploaded file"))
		return
	}
	defer file.Close()

	vendors, err := h.transferUsecase.ImportCSV(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vendors": vendors, "count": len(vendors)})
}

// ExportCSV downloads the whole directory as CSV
// GET /api/v1/vendors/export
func (h *TransferHandler) ExportCSV(c *gin.Context) {
	doc := h.transferUsecase.ExportCSV(c.Request.Context())
	response.Attachment(c, usecases.ExportFilename, "text/csv", []byte(doc))
}

// ExportXLSX downloads the whole directory as a single-sheet workbook
// GET /api/v1/vendors/export/xlsx
func (h *TransferHandler) ExportXLSX(c *gin.Context) {
	f, err := h.transferUsecase.ExportXLSX(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, usecases.ExportXLSXFilename, xlsxContentType, buf.Bytes())
}
