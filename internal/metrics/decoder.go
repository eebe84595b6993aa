// Package metrics exposes Prometheus collectors for PSBT decoding.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/psbt-decoder/internal/psbt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "psbt_decoder",
		Subsystem: "decoder",
		Name:      "decode_total",
		Help:      "Count of decoded documents.",
	}, []string{"flavour", "status"})

	decodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "psbt_decoder",
		Subsystem: "decoder",
		Name:      "decode_duration_seconds",
		Help:      "Duration of decoding a whole document.",
		Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"flavour", "status"})

	decodeMaps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "psbt_decoder",
		Subsystem: "decoder",
		Name:      "maps_total",
		Help:      "Count of decoded maps per scope.",
	}, []string{"flavour", "scope"})

	decodeRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "psbt_decoder",
		Subsystem: "decoder",
		Name:      "records_total",
		Help:      "Count of decoded records per scope.",
	}, []string{"flavour", "scope"})

	decodeMapSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "psbt_decoder",
		Subsystem: "decoder",
		Name:      "document_maps",
		Help:      "Number of input and output maps per decoded document.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"flavour", "scope"})
)

// Decoder tracks metrics for one decoder flavour (psbt or pset).
type Decoder struct {
	flavour string
}

func NewDecoder(flavour string) *Decoder {
	if flavour == "" {
		flavour = "unknown"
	}
	return &Decoder{flavour: flavour}
}

// ObserveDecode records status and duration of a whole decode.
func (m Decoder) ObserveDecode(err error, inputs, outputs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	decodeTotal.WithLabelValues(m.flavour, status).Inc()
	decodeDuration.WithLabelValues(m.flavour, status).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	decodeMapSize.WithLabelValues(m.flavour, string(psbt.ScopeInput)).Observe(float64(inputs))
	decodeMapSize.WithLabelValues(m.flavour, string(psbt.ScopeOutput)).Observe(float64(outputs))
}

// ObserveMap records one decoded map and its record count.
func (m Decoder) ObserveMap(scope psbt.ScopeKind, records int) {
	decodeMaps.WithLabelValues(m.flavour, string(scope)).Inc()
	decodeRecords.WithLabelValues(m.flavour, string(scope)).Add(float64(records))
}

// WriteTextfile dumps every registered collector to path in the Prometheus text format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
