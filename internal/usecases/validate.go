package usecases

import (
	"regexp"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"vendor-desk.backend/internal/domain/entities"
)

const calendarDateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateVendorInput enforces the add/edit form rules and returns all
// violations. CSV import deliberately bypasses these checks: imported
// rows are normalized but trusted.
func ValidateVendorInput(in *entities.VendorInput) []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "Category is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Email format invalid")
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		digits := entities.NormalizePhone(phone)
		if len(digits) < 10 || len(digits) > 15 {
			errs = append(errs, "Phone must be 10-15 digits")
		}
	}
	if in.Price != 0 && in.Price < 0 {
		errs = append(errs, "Price must be a positive number")
	}
	if in.Rating != 0 && (in.Rating < 1 || in.Rating > 5) {
		errs = append(errs, "Rating must be integer 1-5")
	}

	start, startOK := parseCalendarDate(in.ContractStart)
	end, endOK := parseCalendarDate(in.ContractEnd)
	if !startOK || !endOK {
		errs = append(errs, "Contract dates must be YYYY-MM-DD")
	}
	if start.Valid && end.Valid && start.Time.After(end.Time) {
		errs = append(errs, "Contract start must be before contract end")
	}

	return errs
}

// parseCalendarDate turns an ISO calendar date (or RFC3339 timestamp)
// into a null.Time. Empty input is a valid absence; anything else that
// fails to parse reports ok=false and stays absent.
func parseCalendarDate(s string) (null.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Time{}, true
	}
	if t, err := time.Parse(calendarDateLayout, s); err == nil {
		return null.TimeFrom(t), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return null.TimeFrom(t), true
	}
	return null.Time{}, false
}
