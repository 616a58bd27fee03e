package sax

import (
	"fmt"

	"github.com/arloliu/saxbitmap/errs"
)

// Words splits window into len(window)/featureSize contiguous, non-overlapping
// features in arrival order and returns the SAX word of each.
//
// Returns errs.ErrWindowAlignment if featureSize is not positive or does not
// divide len(window). Encoding errors are wrapped with the feature index.
func (e *Encoder) Words(window []float64, featureSize int) ([]string, error) {
	if featureSize <= 0 || len(window)%featureSize != 0 {
		return nil, fmt.Errorf("%w: window length %d, feature size %d",
			errs.ErrWindowAlignment, len(window), featureSize)
	}

	count := len(window) / featureSize
	words := make([]string, 0, count)
	for i := range count {
		word, err := e.Encode(window[i*featureSize : (i+1)*featureSize])
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		words = append(words, word)
	}

	return words, nil
}
