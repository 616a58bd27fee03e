package detector

import (
	"github.com/arloliu/saxbitmap/internal/options"
	"github.com/sirupsen/logrus"
)

type settings struct {
	cfg     Config
	logger  logrus.FieldLogger
	metrics *Metrics
}

// Option configures a Detector.
type Option = options.Option[*settings]

// WithConfig replaces the whole configuration. Options applied after it
// override individual fields.
func WithConfig(cfg Config) Option {
	return options.NoError(func(s *settings) {
		s.cfg = cfg
	})
}

// WithWordSize sets the number of symbols per SAX word.
func WithWordSize(n int) Option {
	return options.NoError(func(s *settings) {
		s.cfg.WordSize = n
	})
}

// WithWindowFactor sets the number of samples per word symbol.
func WithWindowFactor(n int) Option {
	return options.NoError(func(s *settings) {
		s.cfg.WindowFactor = n
	})
}

// WithLeadWindowFactor sets the lead window length in features.
func WithLeadWindowFactor(n int) Option {
	return options.NoError(func(s *settings) {
		s.cfg.LeadWindowFactor = n
	})
}

// WithLagWindowFactor sets the lag window length in features.
func WithLagWindowFactor(n int) Option {
	return options.NoError(func(s *settings) {
		s.cfg.LagWindowFactor = n
	})
}

// WithRecursionLevel sets the subword length counted into the bitmaps.
func WithRecursionLevel(n int) Option {
	return options.NoError(func(s *settings) {
		s.cfg.RecursionLevel = n
	})
}

// WithAlphabetSize sets the SAX alphabet size.
func WithAlphabetSize(n int) Option {
	return options.NoError(func(s *settings) {
		s.cfg.AlphabetSize = n
	})
}

// WithZeroVarianceFallback encodes flat features as the symbol containing
// zero instead of failing with errs.ErrZeroVariance.
func WithZeroVarianceFallback() Option {
	return options.NoError(func(s *settings) {
		s.cfg.ZeroVarianceFallback = true
	})
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return options.NoError(func(s *settings) {
		s.metrics = m
	})
}
