package detector

import (
	"fmt"
	"time"

	"github.com/arloliu/saxbitmap/endian"
	"github.com/arloliu/saxbitmap/errs"
	"github.com/arloliu/saxbitmap/format"
)

const (
	// SnapshotHeaderSize is the fixed size of a snapshot header in bytes.
	SnapshotHeaderSize = 32
	// SnapshotMagic opens every snapshot.
	SnapshotMagic = "SXBM"

	flagHasTimestamp = 0x1
)

// snapshotHeader is the fixed-size little-endian header of a snapshot.
type snapshotHeader struct {
	Version     format.SnapshotVersion // byte offset 4
	Compression format.CompressionType // byte offset 5
	Flags       uint8                  // byte offset 6, byte 7 is reserved
	// Timestamp is the last-seen timestamp in unix nanoseconds, valid only
	// when flagHasTimestamp is set.
	Timestamp int64  // byte offset 8-15
	LeadLen   uint32 // byte offset 16-19
	LagLen    uint32 // byte offset 20-23
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 24-31
}

func newSnapshotHeader(ts time.Time, compression format.CompressionType) snapshotHeader {
	h := snapshotHeader{
		Version:     format.SnapshotV1,
		Compression: compression,
	}
	if !ts.IsZero() {
		h.Flags |= flagHasTimestamp
		h.Timestamp = ts.UnixNano()
	}

	return h
}

// LastTimestamp returns the stored timestamp, or the zero time if none was stored.
func (h snapshotHeader) LastTimestamp() time.Time {
	if h.Flags&flagHasTimestamp == 0 {
		return time.Time{}
	}

	return time.Unix(0, h.Timestamp)
}

// PayloadSize returns the uncompressed payload size in bytes.
func (h snapshotHeader) PayloadSize() int {
	return (int(h.LeadLen) + int(h.LagLen)) * 8
}

// AppendTo appends the encoded header to dst.
func (h snapshotHeader) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = append(dst, SnapshotMagic...)
	dst = append(dst, byte(h.Version), byte(h.Compression), h.Flags, 0)
	dst = engine.AppendUint64(dst, uint64(h.Timestamp))
	dst = engine.AppendUint32(dst, h.LeadLen)
	dst = engine.AppendUint32(dst, h.LagLen)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// parseSnapshotHeader decodes and validates the header at the start of data.
func parseSnapshotHeader(data []byte) (snapshotHeader, error) {
	if len(data) < SnapshotHeaderSize {
		return snapshotHeader{}, fmt.Errorf("%w: %d bytes, header needs %d",
			errs.ErrInvalidSnapshot, len(data), SnapshotHeaderSize)
	}
	if string(data[0:4]) != SnapshotMagic {
		return snapshotHeader{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidSnapshot, data[0:4])
	}

	engine := endian.GetLittleEndianEngine()
	h := snapshotHeader{
		Version:     format.SnapshotVersion(data[4]),
		Compression: format.CompressionType(data[5]),
		Flags:       data[6],
		Timestamp:   int64(engine.Uint64(data[8:16])),
		LeadLen:     engine.Uint32(data[16:20]),
		LagLen:      engine.Uint32(data[20:24]),
		Checksum:    engine.Uint64(data[24:32]),
	}

	if h.Version != format.SnapshotV1 {
		return snapshotHeader{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, h.Version)
	}
	if !h.Compression.Valid() {
		return snapshotHeader{}, fmt.Errorf("%w: unknown compression type %d", errs.ErrInvalidSnapshot, h.Compression)
	}

	return h, nil
}
