package sax

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/saxbitmap/errs"
	"github.com/arloliu/saxbitmap/internal/options"
	"github.com/arloliu/saxbitmap/internal/pool"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultWordSize is the SAX word length used when none is configured.
const DefaultWordSize = 10

// Encoder converts numeric subsequences into SAX words of a fixed length.
type Encoder struct {
	alphabet    Alphabet
	wordSize    int
	breakpoints []float64
	// zeroSymbol is the symbol whose interval contains 0.
	zeroSymbol           byte
	zeroVarianceFallback bool
}

// NewEncoder creates an encoder producing words of wordSize symbols over the
// first alphabetSize letters.
//
// Parameters:
//   - alphabetSize: number of symbols, in [MinAlphabetSize, MaxAlphabetSize]
//   - wordSize: length of every produced word, at least 1
//   - opts: optional EncoderOption values
//
// Returns:
//   - *Encoder: the encoder with precomputed breakpoints
//   - error: errs.ErrInvalidAlphabetSize or errs.ErrInvalidConfig
func NewEncoder(alphabetSize, wordSize int, opts ...EncoderOption) (*Encoder, error) {
	alphabet, err := NewAlphabet(alphabetSize)
	if err != nil {
		return nil, err
	}
	if wordSize < 1 {
		return nil, fmt.Errorf("%w: word size must be positive, got %d", errs.ErrInvalidConfig, wordSize)
	}

	e := &Encoder{
		alphabet:    alphabet,
		wordSize:    wordSize,
		breakpoints: Breakpoints(alphabetSize),
	}
	e.zeroSymbol = alphabet.Symbol(e.locate(0))

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Breakpoints returns the alphabetSize-1 Gaussian equiprobable breakpoints
// Φ⁻¹(i/alphabetSize) followed by a +Inf sentinel.
//
// The values match evaluating the inverse standard normal CDF at alphabetSize-1
// points evenly spaced over [1/alphabetSize, 1-1/alphabetSize].
func Breakpoints(alphabetSize int) []float64 {
	if alphabetSize < 1 {
		return []float64{math.Inf(1)}
	}

	bp := make([]float64, 0, alphabetSize)
	for i := 1; i < alphabetSize; i++ {
		bp = append(bp, distuv.UnitNormal.Quantile(float64(i)/float64(alphabetSize)))
	}

	return append(bp, math.Inf(1))
}

// Alphabet returns the encoder alphabet.
func (e *Encoder) Alphabet() Alphabet {
	return e.alphabet
}

// WordSize returns the length of produced words.
func (e *Encoder) WordSize() int {
	return e.wordSize
}

// Breakpoints returns a copy of the encoder breakpoints, including the +Inf sentinel.
func (e *Encoder) Breakpoints() []float64 {
	out := make([]float64, len(e.breakpoints))
	copy(out, e.breakpoints)

	return out
}

// Encode returns the SAX word of data.
//
// Partitions are as equal as possible: with n samples, the first n%WordSize()
// partitions hold one extra sample.
//
// Returns:
//   - string: a word of exactly WordSize() symbols
//   - error: errs.ErrSubsequenceTooShort if len(data) < WordSize(),
//     errs.ErrNonFiniteSample if data holds NaN or ±Inf or its mean or
//     standard deviation overflows float64,
//     errs.ErrZeroVariance if all samples are equal and the fallback is disabled
func (e *Encoder) Encode(data []float64) (string, error) {
	n := len(data)
	if n < e.wordSize {
		return "", fmt.Errorf("%w: %d samples, word size %d", errs.ErrSubsequenceTooShort, n, e.wordSize)
	}

	flat := true
	for i, v := range data {
		if !isFinite(v) {
			return "", fmt.Errorf("%w: index %d", errs.ErrNonFiniteSample, i)
		}
		if v != data[0] {
			flat = false
		}
	}

	word := make([]byte, e.wordSize)

	var mean, std float64
	if !flat {
		var variance float64
		mean, variance = stat.PopMeanVariance(data, nil)
		std = math.Sqrt(variance)
		if !isFinite(mean) || !isFinite(std) {
			return "", fmt.Errorf("%w: mean %g, std %g overflow float64", errs.ErrNonFiniteSample, mean, std)
		}
	}
	if flat || std == 0 {
		if !e.zeroVarianceFallback {
			return "", fmt.Errorf("%w: %d samples equal to %g", errs.ErrZeroVariance, n, data[0])
		}
		for i := range word {
			word[i] = e.zeroSymbol
		}

		return string(word), nil
	}

	scaled, cleanup := pool.GetFloat64Slice(n)
	defer cleanup()
	for i, v := range data {
		scaled[i] = (v - mean) / std
		if !isFinite(scaled[i]) {
			return "", fmt.Errorf("%w: standardized sample %d overflows float64", errs.ErrNonFiniteSample, i)
		}
	}

	base, extra := n/e.wordSize, n%e.wordSize
	start := 0
	for i := range word {
		size := base
		if i < extra {
			size++
		}
		word[i] = e.alphabet.Symbol(e.locate(stat.Mean(scaled[start:start+size], nil)))
		start += size
	}

	return string(word), nil
}

// locate returns the index of the first breakpoint strictly greater than v.
// +Inf and NaN map to the last symbol.
func (e *Encoder) locate(v float64) int {
	i := sort.Search(len(e.breakpoints), func(i int) bool {
		return e.breakpoints[i] > v
	})

	return min(i, len(e.breakpoints)-1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
