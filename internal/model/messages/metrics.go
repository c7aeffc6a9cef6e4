package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "ledger",
		Subsystem: "telegram",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"command", "error"},
)

// observeResponse records one answered message. Free text is counted under
// the "none" command so the label set stays small.
func observeResponse(cmd string, elapsed time.Duration, failed bool) {
	if _, ok := knownCommands[cmd]; !ok {
		cmd = "none"
	}
	histogramResponseTime.
		WithLabelValues(cmd, strconv.FormatBool(failed)).
		Observe(elapsed.Seconds())
}
