package models

import "time"

// StorageEntry is a single well-known key holding a JSON-encoded
// payload. The vendor directory lives in one entry, so a save replaces
// the whole collection in one row write.
type StorageEntry struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
