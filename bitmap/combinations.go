package bitmap

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/saxbitmap/errs"
)

// MaxCombinations bounds alphabetSize^subwordLength so frequency tables stay small.
const MaxCombinations = 1 << 20

// Combinations returns every string of length n over the symbols of alphabet, sorted.
//
// Combinations are built by iterative extension: starting from all length-1
// strings, every symbol is prepended to every existing combination until the
// target length is reached. Duplicate symbols in alphabet are ignored. The
// result is a fresh slice; nothing is shared between calls.
//
// Returns nil if n <= 0 or alphabet is empty.
func Combinations(alphabet string, n int) []string {
	symbols := uniqueSymbols(alphabet)
	if n <= 0 || len(symbols) == 0 {
		return nil
	}

	combos := make([]string, 0, len(symbols))
	for _, s := range symbols {
		combos = append(combos, string(s))
	}

	for length := 1; length < n; length++ {
		next := make([]string, 0, len(combos)*len(symbols))
		for _, s := range symbols {
			for _, c := range combos {
				next = append(next, string(s)+c)
			}
		}
		combos = next
	}
	slices.Sort(combos)

	return combos
}

// CombinationCount returns alphabetSize^n.
//
// Returns errs.ErrInvalidAlphabetSize or errs.ErrInvalidSubwordLength for
// non-positive arguments, and errs.ErrTooManyCombinations if the count exceeds
// MaxCombinations.
func CombinationCount(alphabetSize, n int) (int, error) {
	if alphabetSize < 1 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidAlphabetSize, alphabetSize)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidSubwordLength, n)
	}

	count := 1
	for range n {
		count *= alphabetSize
		if count > MaxCombinations {
			return 0, fmt.Errorf("%w: %d^%d exceeds %d",
				errs.ErrTooManyCombinations, alphabetSize, n, MaxCombinations)
		}
	}

	return count, nil
}

// IsPerfectSquare reports whether n is a perfect square and returns its integer square root.
func IsPerfectSquare(n int) (side int, ok bool) {
	if n < 0 {
		return 0, false
	}

	side = int(math.Sqrt(float64(n)))
	for side*side > n {
		side--
	}
	for (side+1)*(side+1) <= n {
		side++
	}

	return side, side*side == n
}

// ValidateShape checks that alphabetSize^n combinations can be laid out as a
// square bitmap and returns the bitmap side.
func ValidateShape(alphabetSize, n int) (int, error) {
	count, err := CombinationCount(alphabetSize, n)
	if err != nil {
		return 0, err
	}

	side, ok := IsPerfectSquare(count)
	if !ok {
		return 0, fmt.Errorf("%w: %d^%d = %d", errs.ErrNonSquareBitmap, alphabetSize, n, count)
	}

	return side, nil
}

func uniqueSymbols(alphabet string) []byte {
	out := make([]byte, 0, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		if !slices.Contains(out, alphabet[i]) {
			out = append(out, alphabet[i])
		}
	}

	return out
}
