package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Vendor directory metrics
	VendorOperationsCounter *prometheus.CounterVec
	ImportedRowsCounter     prometheus.Counter
	VendorsGauge            prometheus.Gauge

	// Contract monitor metrics
	ExpiringContractsGauge prometheus.Gauge
	ExpiredContractsGauge  prometheus.Gauge
)

// Init registers all metrics under the given prefix.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	VendorOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of vendor directory operations",
		},
		[]string{"operation"},
	)

	ImportedRowsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_imported_rows_total",
			Help: "Total number of CSV rows merged into the directory",
		},
	)

	VendorsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_vendors",
			Help: "Number of vendor records in the directory",
		},
	)

	ExpiringContractsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_contracts_expiring_soon",
			Help: "Number of vendor contracts ending within seven days",
		},
	)

	ExpiredContractsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_contracts_expired",
			Help: "Number of vendor contracts already past their end date",
		},
	)
}

// RecordOperation increments the counter for a vendor directory operation
func RecordOperation(operation string) {
	if VendorOperationsCounter != nil {
		VendorOperationsCounter.WithLabelValues(operation).Inc()
	}
}

// RecordImportedRows adds merged row count after a CSV import
func RecordImportedRows(n int) {
	if ImportedRowsCounter != nil {
		ImportedRowsCounter.Add(float64(n))
	}
}

// SetVendorCount updates the directory size gauge
func SetVendorCount(n int) {
	if VendorsGauge != nil {
		VendorsGauge.Set(float64(n))
	}
}

// TrackHTTPRequest records one served request
func TrackHTTPRequest(method, path, status string, start time.Time) {
	if HTTPRequestsTotal == nil {
		return
	}
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
}

// SetContractGauges updates the contract monitor gauges
func SetContractGauges(expiringSoon, expired int) {
	if ExpiringContractsGauge != nil {
		ExpiringContractsGauge.Set(float64(expiringSoon))
	}
	if ExpiredContractsGauge != nil {
		ExpiredContractsGauge.Set(float64(expired))
	}
}
