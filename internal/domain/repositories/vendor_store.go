package repositories

import (
	"context"

	"vendor-desk.backend/internal/domain/entities"
)

// LoadResult tells a caller why a loaded collection looks the way it
// does: a real payload, nothing persisted yet, or a payload that could
// not be read and was discarded. Corrupt payloads never surface as
// errors; they degrade to an empty collection.
type LoadResult string

const (
	LoadResultOK      LoadResult = "ok"
	LoadResultEmpty   LoadResult = "empty"
	LoadResultCorrupt LoadResult = "corrupt"
)

// VendorStore persists the ordered vendor collection as a whole. Save
// replaces the entire collection atomically from the caller's
// perspective; there are no partial writes visible to subsequent loads.
type VendorStore interface {
	Load(ctx context.Context) ([]entities.Vendor, LoadResult)
	Save(ctx context.Context, vendors []entities.Vendor) error
}
