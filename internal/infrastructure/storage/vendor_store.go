package storage

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/domain/repositories"
	"vendor-desk.backend/internal/infrastructure/models"
	"vendor-desk.backend/pkg/logger"
)

// VendorsKey is the well-known storage key for the vendor collection.
const VendorsKey = "vendors"

// vendorStore implements repositories.VendorStore on a single
// storage_entries row holding the JSON-encoded array.
type vendorStore struct {
	db *gorm.DB
}

// NewVendorStore creates a new vendor store
func NewVendorStore(db *gorm.DB) repositories.VendorStore {
	return &vendorStore{db: db}
}

// Load returns the persisted collection. A missing row is an empty
// directory; an unreadable row or payload is logged and also surfaces
// as empty, flagged corrupt for diagnostics.
func (s *vendorStore) Load(ctx context.Context) ([]entities.Vendor, repositories.LoadResult) {
	var entry models.StorageEntry
	if err := s.db.WithContext(ctx).First(&entry, "key = ?", VendorsKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entities.Vendor{}, repositories.LoadResultEmpty
		}
		logger.Error(ctx, "Failed to load vendors", zap.Error(err))
		return []entities.Vendor{}, repositories.LoadResultCorrupt
	}

	var vendors []entities.Vendor
	if err := json.Unmarshal([]byte(entry.Value), &vendors); err != nil {
		logger.Error(ctx, "Discarding corrupt vendor payload", zap.Error(err))
		return []entities.Vendor{}, repositories.LoadResultCorrupt
	}
	if vendors == nil {
		vendors = []entities.Vendor{}
	}
	return vendors, repositories.LoadResultOK
}

// Save replaces the persisted collection with one row write.
func (s *vendorStore) Save(ctx context.Context, vendors []entities.Vendor) error {
	if vendors == nil {
		vendors = []entities.Vendor{}
	}
	payload, err := json.Marshal(vendors)
	if err != nil {
		return err
	}

	entry := models.StorageEntry{Key: VendorsKey, Value: string(payload)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}
