package usecases_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/usecases"
)

func endingIn(now time.Time, days int) *entities.Vendor {
	return &entities.Vendor{ContractEnd: null.TimeFrom(now.AddDate(0, 0, days))}
}

func TestCheckContractExpiry_NoEndDateIsValidUnbounded(t *testing.T) {
	got := usecases.CheckContractExpiry(&entities.Vendor{}, time.Now())
	assert.Equal(t, entities.ContractStatusValid, got.Status)
	assert.Nil(t, got.DaysLeft)
}

func TestCheckContractExpiry_Boundaries(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	cases := []struct {
		days int
		want entities.ContractStatus
	}{
		{-1, entities.ContractStatusExpired},
		{0, entities.ContractStatusExpiringSoon},
		{7, entities.ContractStatusExpiringSoon},
		{8, entities.ContractStatusValid},
		{365, entities.ContractStatusValid},
	}
	for _, tc := range cases {
		got := usecases.CheckContractExpiry(endingIn(now, tc.days), now)
		assert.Equal(t, tc.want, got.Status, "days %d", tc.days)
		require.NotNil(t, got.DaysLeft)
		assert.Equal(t, tc.days, *got.DaysLeft, "days %d", tc.days)
	}
}

func TestCheckContractExpiry_SignedDayCountWhenExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	got := usecases.CheckContractExpiry(endingIn(now, -10), now)
	assert.Equal(t, entities.ContractStatusExpired, got.Status)
	require.NotNil(t, got.DaysLeft)
	assert.Equal(t, -10, *got.DaysLeft)
}

func TestCheckContractExpiry_TimeOfDayIgnored(t *testing.T) {
	end := time.Date(2026, 9, 1, 1, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	got := usecases.CheckContractExpiry(&entities.Vendor{ContractEnd: null.TimeFrom(end)}, now)
	require.NotNil(t, got.DaysLeft)
	// 23:59 vs 01:00 is under two hours apart, but a full calendar day
	assert.Equal(t, 1, *got.DaysLeft)
	assert.Equal(t, entities.ContractStatusExpiringSoon, got.Status)
}
