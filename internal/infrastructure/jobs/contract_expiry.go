package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vendor-desk.backend/internal/domain/entities"
	"vendor-desk.backend/internal/domain/repositories"
	"vendor-desk.backend/internal/usecases"
	"vendor-desk.backend/pkg/logger"
	"vendor-desk.backend/pkg/metrics"
)

// ContractExpiryJob periodically scans the directory and reports how
// many contracts are expiring soon or already expired. It only
// observes; the store is never mutated.
type ContractExpiryJob struct {
	store    repositories.VendorStore
	interval time.Duration
	stop     chan struct{}
}

func NewContractExpiryJob(store repositories.VendorStore) *ContractExpiryJob {
	return &ContractExpiryJob{
		store:    store,
		interval: 1 * time.Hour,
		stop:     make(chan struct{}),
	}
}

// NewContractExpiryJobWithInterval overrides the scan interval.
func NewContractExpiryJobWithInterval(store repositories.VendorStore, interval time.Duration) *ContractExpiryJob {
	j := NewContractExpiryJob(store)
	j.interval = interval
	return j
}

func (j *ContractExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting contract expiry job", zap.Duration("interval", j.interval))

	// Run once at startup so the gauges are populated immediately
	j.Scan(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Contract expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Contract expiry job stopped")
			return
		case <-ticker.C:
			j.Scan(ctx)
		}
	}
}

func (j *ContractExpiryJob) Stop() {
	close(j.stop)
}

// Scan classifies every contract against today and publishes the
// counts. Returns (expiringSoon, expired).
func (j *ContractExpiryJob) Scan(ctx context.Context) (int, int) {
	vendors, _ := j.store.Load(ctx)
	now := time.Now()

	var expiringSoon, expired int
	for i := range vendors {
		switch usecases.CheckContractExpiry(&vendors[i], now).Status {
		case entities.ContractStatusExpiringSoon:
			expiringSoon++
		case entities.ContractStatusExpired:
			expired++
		}
	}

	metrics.SetContractGauges(expiringSoon, expired)
	if expiringSoon > 0 || expired > 0 {
		logger.Warn(ctx, "Contracts need attention",
			zap.Int("expiring_soon", expiringSoon),
			zap.Int("expired", expired),
		)
	}
	return expiringSoon, expired
}
