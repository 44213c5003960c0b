package usecases

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/domain/repositories"
	"vendor-desk.backend/pkg/metrics"
	"vendor-desk.backend/pkg/vendorcsv"
)

// ExportFilename and ReportFilename are the default attachment names.
const (
	ExportFilename     = "vendors_export.csv"
	ExportXLSXFilename = "vendors_export.xlsx"
	ReportFilename     = "vendor_report.csv"
)

// exportColumns is the fixed CSV column order of the exchange contract.
var exportColumns = []string{
	"id", "name", "category", "phone", "email", "price", "rating",
	"status", "gst", "license", "agreement", "performanceScore",
	"riskLevel", "contractStart", "contractEnd", "notes",
}

// TransferUsecase handles bulk exchange of the directory: CSV import
// with dedup merge, and CSV/XLSX export.
type TransferUsecase struct {
	store repositories.VendorStore
}

// NewTransferUsecase creates a new transfer usecase
func NewTransferUsecase(store repositories.VendorStore) *TransferUsecase {
	return &TransferUsecase{store: store}
}

// ImportCSV reads the whole file, decodes it, normalizes every row into
// a vendor, recomputes the derived fields (an imported score column is
// discarded, never trusted) and merges by natural key against the
// snapshot being built, so later rows can match earlier rows of the
// same file. The store is written exactly once, at the end; a failed
// read fails the operation with no writes at all.
func (u *TransferUsecase) ImportCSV(ctx context.Context, r io.Reader) ([]entities.Vendor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed reading import file: %w", err)
	}

	rows := vendorcsv.Rows(string(data))
	vendors, _ := u.store.Load(ctx)
	for _, row := range rows {
		vendor := normalizeRow(row)
		vendor.PerformanceScore = ComputePerformanceScore(&vendor)
		vendor.RiskLevel = ComputeRiskLevel(&vendor)
		vendors, _ = mergeVendor(vendors, &vendor)
	}

	persistVendors(ctx, u.store, vendors)
	metrics.RecordImportedRows(len(rows))
	metrics.RecordOperation("import")
	return vendors, nil
}

// ExportCSV encodes the whole directory: header row first, CRLF joined,
// cells quoted only when they need it.
func (u *TransferUsecase) ExportCSV(ctx context.Context) string {
	vendors, _ := u.store.Load(ctx)

	lines := make([]string, 0, len(vendors)+1)
	lines = append(lines, vendorcsv.JoinRow(exportColumns))
	for i := range vendors {
		lines = append(lines, vendorcsv.JoinRow(vendorCells(&vendors[i])))
	}
	metrics.RecordOperation("export")
	return vendorcsv.EncodeDocument(lines)
}

// ExportXLSX renders the same 16 columns onto a single worksheet.
func (u *TransferUsecase) ExportXLSX(ctx context.Context) (*excelize.File, error) {
	vendors, _ := u.store.Load(ctx)

	f := excelize.NewFile()
	const sheet = "Vendors"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i := range vendors {
		cells := vendorCells(&vendors[i])
		row := make([]interface{}, len(cells))
		for c, cell := range cells {
			row[c] = cell
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	metrics.RecordOperation("export_xlsx")
	return f, nil
}

// vendorCells stringifies one record in export column order. Booleans
// render as literal true/false; absent dates render empty.
func vendorCells(v *entities.Vendor) []string {
	return []string{
		v.ID,
		v.Name,
		v.Category,
		v.Phone,
		v.Email,
		formatNumber(v.Price),
		strconv.Itoa(v.Rating),
		string(v.Status),
		strconv.FormatBool(v.GST),
		strconv.FormatBool(v.License),
		strconv.FormatBool(v.Agreement),
		formatNumber(v.PerformanceScore),
		string(v.RiskLevel),
		formatDate(v.ContractStart),
		formatDate(v.ContractEnd),
		v.Notes,
	}
}

// normalizeRow builds a vendor shape from a decoded CSV row: missing
// text fields default to empty, numbers to 0, status to active,
// compliance flags to false unless the cell coerces true. Any id column
// is ignored; the merge decides identity.
func normalizeRow(row map[string]string) entities.Vendor {
	status := entities.VendorStatus(row["status"])
	if status == "" {
		status = entities.VendorStatusActive
	}
	start, _ := parseCalendarDate(row["contractStart"])
	end, _ := parseCalendarDate(row["contractEnd"])

	return entities.Vendor{
		Name:          row["name"],
		Category:      row["category"],
		Phone:         row["phone"],
		Email:         row["email"],
		Price:         coerceNumber(row["price"]),
		Rating:        coerceInt(row["rating"]),
		Status:        status,
		GST:           coerceBool(row["gst"]),
		License:       coerceBool(row["license"]),
		Agreement:     coerceBool(row["agreement"]),
		ContractStart: start,
		ContractEnd:   end,
		Notes:         row["notes"],
	}
}

// coerceNumber maps empty or non-numeric cells to 0.
func coerceNumber(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func coerceInt(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return int(coerceNumber(s))
}

// coerceBool is true iff the trimmed lower-cased cell is "true" or "1".
func coerceBool(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "true") || s == "1"
}
