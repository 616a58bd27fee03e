package detector

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/arloliu/saxbitmap/bitmap"
	"github.com/arloliu/saxbitmap/errs"
	"github.com/arloliu/saxbitmap/internal/options"
	"github.com/arloliu/saxbitmap/internal/pool"
	"github.com/arloliu/saxbitmap/sax"
	"github.com/sirupsen/logrus"
)

// Detector scores a stream of samples by comparing the SAX bitmaps of a lead
// and a lag window.
type Detector struct {
	cfg          Config
	encoder      *sax.Encoder
	combinations []string

	lead *window
	lag  *window

	lastTimestamp time.Time

	logger  logrus.FieldLogger
	metrics *Metrics
}

// New creates a Detector from DefaultConfig modified by opts.
//
// The configuration is validated eagerly; see Config.Validate for the
// possible errors.
func New(opts ...Option) (*Detector, error) {
	s := &settings{cfg: DefaultConfig()}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	var encOpts []sax.EncoderOption
	if s.cfg.ZeroVarianceFallback {
		encOpts = append(encOpts, sax.WithZeroVarianceFallback())
	}
	encoder, err := sax.NewEncoder(s.cfg.AlphabetSize, s.cfg.WordSize, encOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	logger := s.logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Detector{
		cfg:          s.cfg,
		encoder:      encoder,
		combinations: bitmap.Combinations(encoder.Alphabet().Symbols(), s.cfg.RecursionLevel),
		lead:         newWindow(s.cfg.LeadCapacity()),
		lag:          newWindow(s.cfg.LagCapacity()),
		logger:       logger,
		metrics:      s.metrics,
	}, nil
}

// Detect ingests samples in order and returns one Analysis per sample that
// arrived while both windows were full, in arrival order.
//
// The timestamp is recorded as the last-seen timestamp of the whole batch.
// When a cycle fails, Detect stops and returns the analyses produced so far
// together with the error; samples ingested before the failure stay in the
// windows. A NaN or infinite sample is rejected with errs.ErrNonFiniteSample
// before it is ingested.
func (d *Detector) Detect(samples []float64, timestamp time.Time) ([]Analysis, error) {
	d.lastTimestamp = timestamp

	results := make([]Analysis, 0, d.expectedResults(len(samples)))
	ingested := 0
	defer func() {
		d.metrics.observeSamples(ingested)
		d.metrics.observeFill(d.fillRatio())
	}()

	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err := fmt.Errorf("%w: sample %d is %v", errs.ErrNonFiniteSample, i, v)
			return results, d.fail(err, i, len(results))
		}

		if old, ok := d.lead.Push(v); ok {
			d.lag.Push(old)
		}
		ingested++

		if !d.Ready() {
			continue
		}

		analysis, err := d.analyze()
		if err != nil {
			return results, d.fail(err, i, len(results))
		}
		d.metrics.observeCycle(analysis.Score)
		results = append(results, analysis)
	}

	if len(results) > 0 {
		d.logger.WithFields(logrus.Fields{
			"samples":    len(samples),
			"cycles":     len(results),
			"last_score": results[len(results)-1].Score,
			"lead_len":   d.lead.Len(),
			"lag_len":    d.lag.Len(),
		}).Debug("detect batch scored")
	}

	return results, nil
}

func (d *Detector) fail(err error, index, produced int) error {
	d.metrics.observeError()
	d.logger.WithFields(logrus.Fields{
		"sample_index": index,
		"cycles":       produced,
	}).WithError(err).Warn("detect batch aborted")

	return err
}

// analyze runs one cycle over the current window contents.
func (d *Detector) analyze() (Analysis, error) {
	leadBitmap, err := d.windowBitmap(d.lead)
	if err != nil {
		return Analysis{}, fmt.Errorf("lead window: %w", err)
	}
	lagBitmap, err := d.windowBitmap(d.lag)
	if err != nil {
		return Analysis{}, fmt.Errorf("lag window: %w", err)
	}

	score, err := bitmap.Dissimilarity(leadBitmap, lagBitmap)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{Score: score, LeadBitmap: leadBitmap, LagBitmap: lagBitmap}, nil
}

func (d *Detector) windowBitmap(w *window) (bitmap.Bitmap, error) {
	scratch, cleanup := pool.GetFloat64Slice(w.Len())
	defer cleanup()
	w.CopyTo(scratch)

	words, err := d.encoder.Words(scratch, d.cfg.WindowSize())
	if err != nil {
		return bitmap.Bitmap{}, err
	}

	return bitmap.Build(bitmap.CountFrequencies(words, d.combinations))
}

func (d *Detector) expectedResults(n int) int {
	missing := d.UniverseSize() - d.lead.Len() - d.lag.Len()
	switch {
	case missing <= 0:
		return n
	case n < missing:
		return 0
	default:
		return n - missing + 1
	}
}

func (d *Detector) fillRatio() float64 {
	return float64(d.lead.Len()+d.lag.Len()) / float64(d.UniverseSize())
}

// Config returns the detector configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// LastTimestamp returns the timestamp of the latest Detect call, or the zero
// time if Detect has not been called.
func (d *Detector) LastTimestamp() time.Time {
	return d.lastTimestamp
}

// Ready reports whether both windows are full, so the next sample produces an Analysis.
func (d *Detector) Ready() bool {
	return d.lead.Full() && d.lag.Full()
}

// LeadLen returns the number of samples in the lead window.
func (d *Detector) LeadLen() int {
	return d.lead.Len()
}

// LagLen returns the number of samples in the lag window.
func (d *Detector) LagLen() int {
	return d.lag.Len()
}

// LeadCapacity returns the lead window capacity.
func (d *Detector) LeadCapacity() int {
	return d.lead.Cap()
}

// LagCapacity returns the lag window capacity.
func (d *Detector) LagCapacity() int {
	return d.lag.Cap()
}

// UniverseSize returns LeadCapacity + LagCapacity.
func (d *Detector) UniverseSize() int {
	return d.lead.Cap() + d.lag.Cap()
}

// LeadValues returns a copy of the lead window, oldest sample first.
func (d *Detector) LeadValues() []float64 {
	return d.lead.Values()
}

// LagValues returns a copy of the lag window, oldest sample first.
func (d *Detector) LagValues() []float64 {
	return d.lag.Values()
}

// Reset empties both windows and clears the last timestamp.
func (d *Detector) Reset() {
	d.lead.Reset()
	d.lag.Reset()
	d.lastTimestamp = time.Time{}
	d.metrics.observeFill(0)
}
