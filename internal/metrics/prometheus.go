package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kmul_multiplications_total",
			Help: "The total number of multiplications processed",
		},
		[]string{"algorithm", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kmul_multiplication_duration_seconds",
			Help:    "The duration of multiplications in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"algorithm"},
	)
	operandWords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kmul_operand_words",
		Help:    "Length in words of multiplication operands",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})
	recursionDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kmul_karatsuba_recursion_depth",
		Help: "Deepest Karatsuba recursion level reached by the last multiplication",
	})
	scratchWords = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kmul_karatsuba_scratch_words_total",
		Help: "Total scratch words acquired by Karatsuba multiplications",
	})
	mismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kmul_mismatches_total",
		Help: "Comparisons in which multipliers disagreed",
	})
)

// RecordMultiplication counts one multiplication by algorithm and outcome
// and observes its duration.
func RecordMultiplication(algorithm string, d time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	multiplicationsTotal.WithLabelValues(algorithm, status).Inc()
	multiplicationDuration.WithLabelValues(algorithm).Observe(d.Seconds())
}

// RecordOperands observes the lengths of both operands.
func RecordOperands(wa, wb int) {
	operandWords.Observe(float64(wa))
	operandWords.Observe(float64(wb))
}

// RecordRecursion sets the recursion depth gauge and adds the scratch words.
func RecordRecursion(depth, scratch int) {
	recursionDepth.Set(float64(depth))
	scratchWords.Add(float64(scratch))
}

// RecordMismatch counts a comparison whose results disagreed.
func RecordMismatch() {
	mismatchesTotal.Inc()
}

// Handler returns the Prometheus exposition handler for the default
// registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
