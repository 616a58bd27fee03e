package detector

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by a Detector.
//
// All methods are no-ops on a nil *Metrics.
type Metrics struct {
	samples   prometheus.Counter
	cycles    prometheus.Counter
	errors    prometheus.Counter
	lastScore prometheus.Gauge
	scores    prometheus.Histogram
	fill      prometheus.Gauge
}

// NewMetrics creates the detector collectors labeled with signal and registers
// them with reg. A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer, signal string) (*Metrics, error) {
	labels := prometheus.Labels{"signal": signal}

	m := &Metrics{
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "saxbitmap_samples_total",
			Help:        "Samples ingested by the detector.",
			ConstLabels: labels,
		}),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "saxbitmap_cycles_total",
			Help:        "Completed analysis cycles.",
			ConstLabels: labels,
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "saxbitmap_errors_total",
			Help:        "Detect batches aborted by an error.",
			ConstLabels: labels,
		}),
		lastScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "saxbitmap_last_score",
			Help:        "Dissimilarity score of the latest cycle.",
			ConstLabels: labels,
		}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "saxbitmap_score",
			Help:        "Distribution of dissimilarity scores.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		fill: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "saxbitmap_window_fill_ratio",
			Help:        "Buffered samples divided by the universe size.",
			ConstLabels: labels,
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.samples, m.cycles, m.errors, m.lastScore, m.scores, m.fill} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (m *Metrics) observeSamples(n int) {
	if m == nil || n == 0 {
		return
	}
	m.samples.Add(float64(n))
}

func (m *Metrics) observeCycle(score float64) {
	if m == nil {
		return
	}
	m.cycles.Inc()
	m.lastScore.Set(score)
	m.scores.Observe(score)
}

func (m *Metrics) observeError() {
	if m == nil {
		return
	}
	m.errors.Inc()
}

func (m *Metrics) observeFill(ratio float64) {
	if m == nil {
		return
	}
	m.fill.Set(ratio)
}
