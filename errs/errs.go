// Package errs defines the sentinel errors returned by saxbitmap packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is:
//
//	if errors.Is(err, errs.ErrZeroVariance) {
//	    // flat window, skip the batch or enable the zero-variance fallback
//	}
package errs

import "errors"

// Configuration errors. These are returned eagerly when a detector or encoder is created.
var (
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidAlphabetSize  = errors.New("invalid alphabet size")
	ErrNonSquareBitmap      = errors.New("combination count is not a perfect square")
	ErrTooManyCombinations  = errors.New("too many subword combinations")
	ErrInvalidCompression   = errors.New("invalid compression type")
	ErrInvalidSubwordLength = errors.New("invalid subword length")
)

// Data errors. These are raised during a detection cycle and abort the current batch.
var (
	ErrWindowAlignment     = errors.New("window length is not a multiple of the feature size")
	ErrZeroVariance        = errors.New("subsequence has zero variance")
	ErrSubsequenceTooShort = errors.New("subsequence shorter than word size")
	ErrNonFiniteSample     = errors.New("sample is NaN or infinite")
	ErrEmptyFrequencyTable = errors.New("frequency table is empty")
	ErrBitmapShapeMismatch = errors.New("bitmap shapes differ")
)

// Snapshot errors.
var (
	ErrInvalidSnapshot          = errors.New("invalid detector snapshot")
	ErrChecksumMismatch         = errors.New("snapshot checksum mismatch")
	ErrSnapshotMismatch         = errors.New("snapshot does not fit detector capacities")
	ErrDecompressedSizeExceeded = errors.New("decompressed data exceeds size limit")
)
