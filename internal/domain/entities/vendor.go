package entities

import (
	"strings"

	"github.com/volatiletech/null/v8"
)

// VendorStatus represents vendor lifecycle status
type VendorStatus string

const (
	VendorStatusActive      VendorStatus = "active"
	VendorStatusInactive    VendorStatus = "inactive"
	VendorStatusBlacklisted VendorStatus = "blacklisted"
)

// RiskLevel represents the risk tier derived from the performance score
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// ContractStatus classifies a vendor's contract-end date against today
type ContractStatus string

const (
	ContractStatusValid        ContractStatus = "valid"
	ContractStatusExpiringSoon ContractStatus = "expiringSoon"
	ContractStatusExpired      ContractStatus = "expired"
)

// Vendor represents a supplier record with compliance flags and derived
// quality metrics. PerformanceScore and RiskLevel are always recomputed
// before persistence and never accepted from outside.
type Vendor struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         string       `json:"category"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	Price            float64      `json:"price"`
	Rating           int          `json:"rating"`
	Status           VendorStatus `json:"status"`
	GST              bool         `json:"gst"`
	License          bool         `json:"license"`
	Agreement        bool         `json:"agreement"`
	PerformanceScore float64      `json:"performanceScore"`
	RiskLevel        RiskLevel    `json:"riskLevel"`
	ContractStart    null.Time    `json:"contractStart"`
	ContractEnd      null.Time    `json:"contractEnd"`
	Notes            string       `json:"notes"`
}

// VendorInput represents input for the validated add/edit entry points.
// Contract dates arrive as ISO calendar dates ("2006-01-02") or empty.
type VendorInput struct {
	Name          string       `json:"name"`
	Category      string       `json:"category"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	Price         float64      `json:"price"`
	Rating        int          `json:"rating"`
	Status        VendorStatus `json:"status"`
	GST           bool         `json:"gst"`
	License       bool         `json:"license"`
	Agreement     bool         `json:"agreement"`
	ContractStart string       `json:"contractStart"`
	ContractEnd   string       `json:"contractEnd"`
	Notes         string       `json:"notes"`
}

// ContractExpiry is the contract monitor result. DaysLeft is nil when the
// vendor has no contract end date (unbounded).
type ContractExpiry struct {
	Status   ContractStatus `json:"status"`
	DaysLeft *int           `json:"daysLeft,omitempty"`
}

// VendorView is a vendor plus its contract classification, as served by
// the list endpoint.
type VendorView struct {
	Vendor
	Contract ContractExpiry `json:"contract"`
}

// VendorFilter narrows and orders a listing. Zero values mean "no filter".
type VendorFilter struct {
	Query     string
	Category  string
	Status    string
	MinRating int
	MinPrice  float64
	MaxPrice  float64
	SortBy    string
}

// NormalizeEmail lower-cases an email for natural-key comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// NormalizePhone strips everything but digits for natural-key comparison.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SameIdentity reports whether candidate collides with existing on the
// natural key: a non-empty normalized email match or a non-empty
// normalized phone match. Email takes no priority over phone.
func SameIdentity(candidate, existing *Vendor) bool {
	if email := NormalizeEmail(candidate.Email); email != "" && NormalizeEmail(existing.Email) == email {
		return true
	}
	if phone := NormalizePhone(candidate.Phone); phone != "" && NormalizePhone(existing.Phone) == phone {
		return true
	}
	return false
}
