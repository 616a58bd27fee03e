// Package pool provides sync.Pool backed scratch buffers for the detection
// hot path and snapshot encoding.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified; callers overwrite every
// element before reading. The returned cleanup function must be called
// (typically with defer) once the slice is no longer referenced.
//
// Example:
//
//	scratch, cleanup := pool.GetFloat64Slice(len(window))
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
