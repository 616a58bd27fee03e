// Package hash provides the xxHash64 helpers used for snapshot checksums and
// bitmap fingerprints.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Float64s computes the xxHash64 of the little-endian IEEE-754 bits of values.
//
// Two slices hash equal iff they hold bit-identical values in the same order,
// so +0 and -0 hash differently.
func Float64s(values []float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
