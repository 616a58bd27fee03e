package sax

import (
	"fmt"
	"strings"

	"github.com/arloliu/saxbitmap/errs"
)

// Letters is the ordered symbol pool alphabets are drawn from.
const Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	MinAlphabetSize     = 2
	MaxAlphabetSize     = len(Letters)
	DefaultAlphabetSize = 4
)

// Alphabet is the ordered set of the first Size() symbols of Letters.
// Symbol index 0 is 'a'.
type Alphabet struct {
	symbols string
}

// NewAlphabet returns the alphabet of the given size.
//
// Returns errs.ErrInvalidAlphabetSize if size is outside [MinAlphabetSize, MaxAlphabetSize].
func NewAlphabet(size int) (Alphabet, error) {
	if size < MinAlphabetSize || size > MaxAlphabetSize {
		return Alphabet{}, fmt.Errorf("%w: %d (must be in [%d, %d])",
			errs.ErrInvalidAlphabetSize, size, MinAlphabetSize, MaxAlphabetSize)
	}

	return Alphabet{symbols: Letters[:size]}, nil
}

// Size returns the number of symbols.
func (a Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns the symbols in index order.
func (a Alphabet) Symbols() string {
	return a.symbols
}

// Symbol returns the symbol at index i. It panics if i is out of range.
func (a Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}

// Index returns the index of symbol s, or -1 if s is not in the alphabet.
func (a Alphabet) Index(s byte) int {
	return strings.IndexByte(a.symbols, s)
}

func (a Alphabet) String() string {
	return a.symbols
}
