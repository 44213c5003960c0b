package usecases

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vendor-desk.backend/internal/domain/entities"
	domainerrors "vendor-desk.backend/internal/domain/errors"
	"vendor-desk.backend/internal/domain/repositories"
	"vendor-desk.backend/pkg/logger"
	"vendor-desk.backend/pkg/metrics"
)

// VendorUsecase handles vendor directory business logic
type VendorUsecase struct {
	store repositories.VendorStore
}

// NewVendorUsecase creates a new vendor usecase
func NewVendorUsecase(store repositories.VendorStore) *VendorUsecase {
	return &VendorUsecase{store: store}
}

// LoadVendors returns the persisted collection verbatim. Missing or
// corrupt persisted state surfaces as an empty collection, never as an
// error.
func (u *VendorUsecase) LoadVendors(ctx context.Context) []entities.Vendor {
	vendors, _ := u.store.Load(ctx)
	return vendors
}

// ListVendors returns the directory filtered, ordered and decorated
// with each vendor's contract classification.
func (u *VendorUsecase) ListVendors(ctx context.Context, filter entities.VendorFilter) []entities.VendorView {
	vendors := filterVendors(u.LoadVendors(ctx), filter)
	sortVendors(vendors, filter.SortBy)

	now := time.Now()
	views := make([]entities.VendorView, 0, len(vendors))
	for i := range vendors {
		views = append(views, entities.VendorView{
			Vendor:   vendors[i],
			Contract: CheckContractExpiry(&vendors[i], now),
		})
	}
	return views
}

// GetVendor gets a vendor by id
func (u *VendorUsecase) GetVendor(ctx context.Context, id string) (*entities.Vendor, error) {
	vendors := u.LoadVendors(ctx)
	for i := range vendors {
		if vendors[i].ID == id {
			return &vendors[i], nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// AddVendor validates the input, derives the score and risk tier, and
// upserts the record by natural key.
func (u *VendorUsecase) AddVendor(ctx context.Context, input *entities.VendorInput) (*entities.Vendor, error) {
	if errs := ValidateVendorInput(input); len(errs) > 0 {
		return nil, domainerrors.BadRequest(strings.Join(errs, "; "))
	}

	vendor := buildVendor(input)
	stored := u.UpsertVendor(ctx, vendor)
	metrics.RecordOperation("add")
	return stored, nil
}

// UpdateVendor validates the input and fully replaces the record with
// the given id. The upsert natural-key rule still governs, so an edit
// that changes the email or phone onto another record collapses into
// that record.
func (u *VendorUsecase) UpdateVendor(ctx context.Context, id string, input *entities.VendorInput) (*entities.Vendor, error) {
	if errs := ValidateVendorInput(input); len(errs) > 0 {
		return nil, domainerrors.BadRequest(strings.Join(errs, "; "))
	}
	if _, err := u.GetVendor(ctx, id); err != nil {
		return nil, err
	}

	vendor := buildVendor(input)
	vendor.ID = id
	stored := u.UpsertVendor(ctx, vendor)
	metrics.RecordOperation("edit")
	return stored, nil
}

// UpsertVendor locates an existing record sharing vendor's natural key
// (first match in store order wins). On a match the stored id is
// preserved and every other field replaced; otherwise the record is
// appended under a fresh id. Derived fields are recomputed before
// persistence in either case.
func (u *VendorUsecase) UpsertVendor(ctx context.Context, vendor *entities.Vendor) *entities.Vendor {
	vendor.PerformanceScore = ComputePerformanceScore(vendor)
	vendor.RiskLevel = ComputeRiskLevel(vendor)

	vendors := u.LoadVendors(ctx)
	vendors, stored := mergeVendor(vendors, vendor)
	persistVendors(ctx, u.store, vendors)
	return stored
}

// DeleteVendorByID removes the record with that id; no-op otherwise.
func (u *VendorUsecase) DeleteVendorByID(ctx context.Context, id string) {
	vendors := u.LoadVendors(ctx)
	kept := vendors[:0]
	for _, v := range vendors {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	persistVendors(ctx, u.store, kept)
	metrics.RecordOperation("delete")
}

// BulkDelete removes every listed id and returns how many records went
// away.
func (u *VendorUsecase) BulkDelete(ctx context.Context, ids []string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	vendors := u.LoadVendors(ctx)
	kept := vendors[:0]
	for _, v := range vendors {
		if _, gone := drop[v.ID]; !gone {
			kept = append(kept, v)
		}
	}
	removed := len(vendors) - len(kept)
	persistVendors(ctx, u.store, kept)
	metrics.RecordOperation("bulk_delete")
	return removed
}

// ClearVendors empties the whole store.
func (u *VendorUsecase) ClearVendors(ctx context.Context) {
	persistVendors(ctx, u.store, []entities.Vendor{})
	metrics.RecordOperation("clear")
}

// ContractStatus classifies a vendor's contract against today.
func (u *VendorUsecase) ContractStatus(ctx context.Context, id string) (entities.ContractExpiry, error) {
	vendor, err := u.GetVendor(ctx, id)
	if err != nil {
		return entities.ContractExpiry{}, err
	}
	return CheckContractExpiry(vendor, time.Now()), nil
}

// mergeVendor applies the natural-key upsert rule against an in-memory
// collection and returns the updated collection plus the stored record.
// Shared by the explicit upsert path and the CSV merge resolver.
func mergeVendor(vendors []entities.Vendor, vendor *entities.Vendor) ([]entities.Vendor, *entities.Vendor) {
	for i := range vendors {
		if entities.SameIdentity(vendor, &vendors[i]) {
			vendor.ID = vendors[i].ID
			vendors[i] = *vendor
			return vendors, &vendors[i]
		}
	}
	vendor.ID = uuid.NewString()
	vendors = append(vendors, *vendor)
	return vendors, &vendors[len(vendors)-1]
}

// persistVendors saves the full collection, logging instead of
// surfacing write failures: persistence is fire-and-forget.
func persistVendors(ctx context.Context, store repositories.VendorStore, vendors []entities.Vendor) {
	if err := store.Save(ctx, vendors); err != nil {
		logger.Error(ctx, "Failed to save vendors", zap.Error(err))
	}
	metrics.SetVendorCount(len(vendors))
}

// buildVendor turns validated form input into a vendor record. Text
// fields are trimmed, the status defaults to active and contract dates
// are parsed as calendar dates.
func buildVendor(input *entities.VendorInput) *entities.Vendor {
	status := input.Status
	if status == "" {
		status = entities.VendorStatusActive
	}
	start, _ := parseCalendarDate(input.ContractStart)
	end, _ := parseCalendarDate(input.ContractEnd)

	return &entities.Vendor{
		Name:          strings.TrimSpace(input.Name),
		Category:      strings.TrimSpace(input.Category),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Price:         input.Price,
		Rating:        input.Rating,
		Status:        status,
		GST:           input.GST,
		License:       input.License,
		Agreement:     input.Agreement,
		ContractStart: start,
		ContractEnd:   end,
		Notes:         input.Notes,
	}
}

func filterVendors(vendors []entities.Vendor, f entities.VendorFilter) []entities.Vendor {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]entities.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Name), query) &&
			!strings.Contains(strings.ToLower(v.Email), query) {
			continue
		}
		if f.Category != "" && v.Category != f.Category {
			continue
		}
		if f.Status != "" && string(v.Status) != f.Status {
			continue
		}
		if f.MinRating > 0 && v.Rating < f.MinRating {
			continue
		}
		if f.MinPrice != 0 && v.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice != 0 && v.Price > f.MaxPrice {
			continue
		}
		out = append(out, v)
	}
	return out
}

// sortVendors orders in place by the requested key; an unknown or empty
// key keeps store order.
func sortVendors(vendors []entities.Vendor, sortBy string) {
	var less func(a, b *entities.Vendor) bool
	switch sortBy {
	case "priceAsc":
		less = func(a, b *entities.Vendor) bool { return a.Price < b.Price }
	case "priceDesc":
		less = func(a, b *entities.Vendor) bool { return a.Price > b.Price }
	case "ratingAsc":
		less = func(a, b *entities.Vendor) bool { return a.Rating < b.Rating }
	case "ratingDesc":
		less = func(a, b *entities.Vendor) bool { return a.Rating > b.Rating }
	case "scoreAsc":
		less = func(a, b *entities.Vendor) bool { return a.PerformanceScore < b.PerformanceScore }
	case "scoreDesc":
		less = func(a, b *entities.Vendor) bool { return a.PerformanceScore > b.PerformanceScore }
	default:
		return
	}
	sort.SliceStable(vendors, func(i, j int) bool { return less(&vendors[i], &vendors[j]) })
}
