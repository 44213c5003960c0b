package usecases

import (
	"context"
	"math"
	"strconv"
	"time"

	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/domain/repositories"
	"vendor-desk.backend/pkg/vendorcsv"
)

// ReportUsecase derives summary artifacts over the directory.
type ReportUsecase struct {
	store repositories.VendorStore
}

// NewReportUsecase creates a new report usecase
func NewReportUsecase(store repositories.VendorStore) *ReportUsecase {
	return &ReportUsecase{store: store}
}

// GenerateReport assembles the report: best vendor by score, cheapest
// by price, all high-risk vendors and the per-category rollup.
func (u *ReportUsecase) GenerateReport(ctx context.Context) *entities.VendorReport {
	vendors, _ := u.store.Load(ctx)
	return &entities.VendorReport{
		GeneratedAt: time.Now().UTC(),
		Best:        bestVendor(vendors),
		Cheapest:    cheapestVendor(vendors),
		HighRisk:    highRiskVendors(vendors),
		Categories:  categorySummary(vendors),
	}
}

// EncodeReportCSV lays the report out as blank-line-separated sections,
// each cell quoted under the usual rule.
func (u *ReportUsecase) EncodeReportCSV(report *entities.VendorReport) string {
	lines := []string{"Generated," + report.GeneratedAt.Format(time.RFC3339), ""}

	lines = append(lines, "Best Vendor,Name,Email,Score,Price")
	if report.Best != nil {
		lines = append(lines, "Best,"+vendorcsv.JoinRow([]string{
			report.Best.Name, report.Best.Email,
			formatNumber(report.Best.PerformanceScore), formatNumber(report.Best.Price),
		}))
	}
	lines = append(lines, "")

	lines = append(lines, "Cheapest Vendor,Name,Email,Price")
	if report.Cheapest != nil {
		lines = append(lines, "Cheapest,"+vendorcsv.JoinRow([]string{
			report.Cheapest.Name, report.Cheapest.Email, formatNumber(report.Cheapest.Price),
		}))
	}
	lines = append(lines, "")

	lines = append(lines, "High Risk Vendors,Name,Email,Phone")
	for i := range report.HighRisk {
		v := &report.HighRisk[i]
		lines = append(lines, ","+vendorcsv.JoinRow([]string{v.Name, v.Email, v.Phone}))
	}
	lines = append(lines, "")

	lines = append(lines, "Category Summary,Category,Count,AvgRating,AvgPrice")
	for _, c := range report.Categories {
		lines = append(lines, ","+vendorcsv.JoinRow([]string{
			c.Category, strconv.Itoa(c.Count), formatNumber(c.AvgRating), formatNumber(c.AvgPrice),
		}))
	}

	return vendorcsv.EncodeDocument(lines)
}

// bestVendor picks the highest performance score; the first record wins
// ties, so store order is the tiebreak.
func bestVendor(vendors []entities.Vendor) *entities.Vendor {
	if len(vendors) == 0 {
		return nil
	}
	best := &vendors[0]
	for i := range vendors[1:] {
		if vendors[i+1].PerformanceScore > best.PerformanceScore {
			best = &vendors[i+1]
		}
	}
	return best
}

// cheapestVendor picks the lowest price. A zero (unset) price counts as
// infinitely expensive rather than free.
func cheapestVendor(vendors []entities.Vendor) *entities.Vendor {
	if len(vendors) == 0 {
		return nil
	}
	cheapest := &vendors[0]
	for i := range vendors[1:] {
		if priceOrInf(&vendors[i+1]) < priceOrInf(cheapest) {
			cheapest = &vendors[i+1]
		}
	}
	return cheapest
}

func priceOrInf(v *entities.Vendor) float64 {
	if v.Price == 0 {
		return math.Inf(1)
	}
	return v.Price
}

func highRiskVendors(vendors []entities.Vendor) []entities.Vendor {
	var out []entities.Vendor
	for i := range vendors {
		if ComputeRiskLevel(&vendors[i]) == entities.RiskLevelHigh {
			out = append(out, vendors[i])
		}
	}
	return out
}

// categorySummary rolls up count and averages per category, buckets in
// first-seen order, blank categories grouped as Uncategorized.
func categorySummary(vendors []entities.Vendor) []entities.CategorySummary {
	type totals struct {
		count       int
		totalRating float64
		totalPrice  float64
	}
	byCategory := map[string]*totals{}
	var order []string

	for i := range vendors {
		name := vendors[i].Category
		if name == "" {
			name = "Uncategorized"
		}
		t, ok := byCategory[name]
		if !ok {
			t = &totals{}
			byCategory[name] = t
			order = append(order, name)
		}
		t.count++
		t.totalRating += float64(vendors[i].Rating)
		t.totalPrice += vendors[i].Price
	}

	out := make([]entities.CategorySummary, 0, len(order))
	for _, name := range order {
		t := byCategory[name]
		out = append(out, entities.CategorySummary{
			Category:  name,
			Count:     t.count,
			AvgRating: t.totalRating / float64(t.count),
			AvgPrice:  t.totalPrice / float64(t.count),
		})
	}
	return out
}
