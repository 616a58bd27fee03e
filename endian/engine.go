// Package endian provides byte order helpers for the snapshot wire format.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder into a single
// EndianEngine interface and adds bulk float64 helpers for window payloads.
// Snapshots are always written little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, samples)
//
// All functions are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendFloat64s appends the IEEE-754 bits of values to dst and returns the extended slice.
func AppendFloat64s(engine EndianEngine, dst []byte, values []float64) []byte {
	for _, v := range values {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst
}

// DecodeFloat64s decodes len(dst) float64 values from src into dst.
//
// It returns false without touching dst if src is shorter than 8*len(dst) bytes.
func DecodeFloat64s(engine EndianEngine, src []byte, dst []float64) bool {
	if len(src) < len(dst)*8 {
		return false
	}
	for i := range dst {
		dst[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
	}

	return true
}
