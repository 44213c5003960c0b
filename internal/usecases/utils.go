package usecases

import (
	"strconv"

	"github.com/volatiletech/null/v8"
)

// formatNumber renders a float the way the exchange format expects:
// shortest decimal representation, no trailing zeros ("100", "10.5").
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatDate renders an ISO calendar date, or empty when absent.
func formatDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(calendarDateLayout)
}
