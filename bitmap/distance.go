package bitmap

import (
	"fmt"

	"github.com/arloliu/saxbitmap/errs"
)

// Dissimilarity returns Σ (a[i,j] - b[i,j])² over all cells.
//
// The result is symmetric, zero iff the bitmaps are equal, and grows with the
// divergence between the two frequency fingerprints. Two empty bitmaps have
// dissimilarity 0.
//
// Returns errs.ErrBitmapShapeMismatch if the sides differ.
func Dissimilarity(a, b Bitmap) (float64, error) {
	if a.side != b.side {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", errs.ErrBitmapShapeMismatch, a.side, a.side, b.side, b.side)
	}
	if a.side == 0 {
		return 0, nil
	}

	ad, bd := a.m.RawMatrix().Data, b.m.RawMatrix().Data
	sum := 0.0
	for i := range ad {
		d := ad[i] - bd[i]
		sum += d * d
	}

	return sum, nil
}
