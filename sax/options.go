package sax

import "github.com/arloliu/saxbitmap/internal/options"

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithZeroVarianceFallback makes Encode map flat subsequences to the symbol
// containing zero instead of returning errs.ErrZeroVariance.
func WithZeroVarianceFallback() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.zeroVarianceFallback = true
	})
}
