package usecases

import (
	"math"

	"vendor-desk.backend/internal/domain/entities"
)

// ComputePerformanceScore derives the quality metric from rating,
// compliance flags and price:
//
//	base           = rating * 2
//	complianceBonus = 0.5 per true flag (gst, license, agreement)
//	pricePenalty   = price * 0.01
//	score          = base + complianceBonus - pricePenalty
//
// rounded to two decimals. No floor or ceiling is applied; the score
// may be negative or exceed 13.
func ComputePerformanceScore(v *entities.Vendor) float64 {
	base := float64(v.Rating) * 2
	bonus := 0.0
	if v.GST {
		bonus += 0.5
	}
	if v.License {
		bonus += 0.5
	}
	if v.Agreement {
		bonus += 0.5
	}
	penalty := v.Price * 0.01
	return math.Round((base+bonus-penalty)*100) / 100
}

// ComputeRiskLevel maps an already-computed performance score to a
// tier. It never recomputes the score. A score that is not a number
// falls back to medium.
func ComputeRiskLevel(v *entities.Vendor) entities.RiskLevel {
	s := v.PerformanceScore
	switch {
	case math.IsNaN(s):
		return entities.RiskLevelMedium
	case s >= 3:
		return entities.RiskLevelLow
	case s >= 1:
		return entities.RiskLevelMedium
	default:
		return entities.RiskLevelHigh
	}
}
