package usecases

import (
	"time"

	"vendor-desk.backend/internal/domain/entities"
)

// CheckContractExpiry classifies a vendor's contract end date against
// now. Both sides are truncated to their calendar date, so time of day
// and intra-day timezone offsets never change the answer. The signed
// whole-day difference decides the status: negative is expired, zero
// through seven is expiringSoon, anything later is valid. A vendor with
// no contract end is always valid with DaysLeft nil (unbounded).
func CheckContractExpiry(v *entities.Vendor, now time.Time) entities.ContractExpiry {
	if !v.ContractEnd.Valid {
		return entities.ContractExpiry{Status: entities.ContractStatusValid}
	}

	days := int(calendarDate(v.ContractEnd.Time).Sub(calendarDate(now)).Hours() / 24)
	status := entities.ContractStatusValid
	switch {
	case days < 0:
		status = entities.ContractStatusExpired
	case days <= 7:
		status = entities.ContractStatusExpiringSoon
	}
	return entities.ContractExpiry{Status: status, DaysLeft: &days}
}

// calendarDate pins a timestamp's date components to UTC midnight so
// day arithmetic is exact regardless of location or DST.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
