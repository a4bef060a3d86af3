package monitoring

import (
	"sync/atomic"
	"time"
)

var exportRequestsTotal atomic.Uint64
var exportRequestsFailed atomic.Uint64
var exportBytesTotal atomic.Int64
var exportDurationMicrosTotal atomic.Uint64

type ExportStats struct {
	RequestsTotal uint64
	FailedTotal   uint64
	BytesTotal    int64
	AvgDurationMS float64
}

// RecordExport tracks one PDF export attempt.
func RecordExport(bytes int64, duration time.Duration, success bool) {
	exportRequestsTotal.Add(1)
	if !success {
		exportRequestsFailed.Add(1)
	}
	if bytes > 0 {
		exportBytesTotal.Add(bytes)
	}
	if duration > 0 {
		exportDurationMicrosTotal.Add(uint64(duration / time.Microsecond))
	}
}

func getExportStats() ExportStats {
	total := exportRequestsTotal.Load()
	totalDurationMicros := exportDurationMicrosTotal.Load()
	avgDurationMS := 0.0
	if total > 0 {
		avgDurationMS = float64(totalDurationMicros) / float64(total) / 1000.0
	}

	return ExportStats{
		RequestsTotal: total,
		FailedTotal:   exportRequestsFailed.Load(),
		BytesTotal:    exportBytesTotal.Load(),
		AvgDurationMS: avgDurationMS,
	}
}
