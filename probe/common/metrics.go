package common

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Run counters for both roles. A probe process is short-lived, so these are
// exposed as an end-of-run summary rather than a scrape endpoint.
var (
	ConnectionsAccepted = metrics.NewCounter("sockprobe_connections_accepted_total")
	BytesReceived       = metrics.NewCounter("sockprobe_bytes_received_total")
	VerificationsPassed = metrics.NewCounter("sockprobe_verifications_passed_total")
	VerificationsFailed = metrics.NewCounter("sockprobe_verifications_failed_total")
	MessagesSent        = metrics.NewCounter("sockprobe_messages_sent_total")
	BytesSent           = metrics.NewCounter("sockprobe_bytes_sent_total")
)

// WriteMetrics writes all run counters to w in Prometheus text format
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
