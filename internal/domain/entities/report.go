package entities

import "time"

// CategorySummary aggregates vendors of one category.
type CategorySummary struct {
	Category  string  `json:"category"`
	Count     int     `json:"count"`
	AvgRating float64 `json:"avgRating"`
	AvgPrice  float64 `json:"avgPrice"`
}

// VendorReport is the derived report artifact: best vendor by score,
// cheapest by price, all high-risk vendors and a per-category rollup.
type VendorReport struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Best        *Vendor           `json:"best"`
	Cheapest    *Vendor           `json:"cheapest"`
	HighRisk    []Vendor          `json:"highRisk"`
	Categories  []CategorySummary `json:"categories"`
}
