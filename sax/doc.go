// Package sax implements Symbolic Aggregate approXimation (SAX) encoding of
// numeric subsequences.
//
// SAX reduces a subsequence to a short word over a small alphabet:
//
//  1. standardize the subsequence to zero mean and unit (population) standard deviation
//  2. split it into wordSize contiguous, as-equal-as-possible partitions
//  3. map each partition mean to the Gaussian equiprobable interval it falls in
//
// The interval boundaries (breakpoints) for an alphabet of size a are the
// standard normal quantiles Φ⁻¹(i/a) for i = 1..a-1, followed by +Inf. Under
// the usual assumption that standardized subsequences are roughly Gaussian,
// every symbol is equally likely.
//
// # Usage
//
//	enc, err := sax.NewEncoder(4, 10)
//	if err != nil {
//	    return err
//	}
//	word, err := enc.Encode(samples) // e.g. "abccddcbaa"
//
// Words splits a whole window into fixed-size features and encodes each:
//
//	words, err := enc.Words(window, 100) // len(window) must be a multiple of 100
//
// # Flat subsequences
//
// A subsequence whose samples are all equal cannot be standardized. Encode
// returns errs.ErrZeroVariance for it unless the encoder was built with
// WithZeroVarianceFallback, in which case every partition maps to the symbol
// whose interval contains zero.
//
// An Encoder is immutable after construction and safe for concurrent use.
package sax
