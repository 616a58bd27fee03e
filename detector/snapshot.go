package detector

import (
	"fmt"

	"github.com/arloliu/saxbitmap/compress"
	"github.com/arloliu/saxbitmap/endian"
	"github.com/arloliu/saxbitmap/errs"
	"github.com/arloliu/saxbitmap/format"
	"github.com/arloliu/saxbitmap/internal/hash"
	"github.com/arloliu/saxbitmap/internal/pool"
	"github.com/sirupsen/logrus"
)

// Snapshot serializes the window contents and the last timestamp.
//
// The layout is a 32-byte header followed by the lead samples then the lag
// samples as little-endian float64 bits, compressed with compression. The
// configuration is not stored: a snapshot can only be restored into a
// detector whose windows are large enough to hold it.
//
// Parameters:
//   - compression: payload compression algorithm
//
// Returns:
//   - []byte: the snapshot, owned by the caller
//   - error: errs.ErrInvalidCompression or a compressor error
func (d *Detector) Snapshot(compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	header := newSnapshotHeader(d.lastTimestamp, compression)
	header.LeadLen = uint32(d.lead.Len()) //nolint: gosec
	header.LagLen = uint32(d.lag.Len())   //nolint: gosec

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)
	buf.Grow(header.PayloadSize())

	engine := endian.GetLittleEndianEngine()
	for _, w := range []*window{d.lead, d.lag} {
		samples, cleanup := pool.GetFloat64Slice(w.Len())
		w.CopyTo(samples)
		buf.B = endian.AppendFloat64s(engine, buf.B, samples)
		cleanup()
	}

	payload := buf.Bytes()
	header.Checksum = hash.Sum64(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	out := make([]byte, 0, SnapshotHeaderSize+len(compressed))
	out = header.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}

// Restore replaces the window contents and the last timestamp with those
// stored in data.
//
// The detector is left untouched when an error is returned:
//   - errs.ErrInvalidSnapshot for a truncated or malformed snapshot, including a
//     payload that decompresses past the size declared in the header
//     (also errs.ErrDecompressedSizeExceeded)
//   - errs.ErrChecksumMismatch when the payload does not match its checksum
//   - errs.ErrSnapshotMismatch when the stored windows exceed this detector's capacities
func (d *Detector) Restore(data []byte) error {
	header, err := parseSnapshotHeader(data)
	if err != nil {
		return err
	}

	if int(header.LeadLen) > d.lead.Cap() || int(header.LagLen) > d.lag.Cap() {
		return fmt.Errorf("%w: snapshot holds lead=%d lag=%d, capacities are lead=%d lag=%d",
			errs.ErrSnapshotMismatch, header.LeadLen, header.LagLen, d.lead.Cap(), d.lag.Cap())
	}
	if header.LagLen > 0 && int(header.LeadLen) != d.lead.Cap() {
		return fmt.Errorf("%w: lag window holds samples but lead window is not full (%d of %d)",
			errs.ErrSnapshotMismatch, header.LeadLen, d.lead.Cap())
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}
	payload, err := codec.DecompressLimit(data[SnapshotHeaderSize:], header.PayloadSize())
	if err != nil {
		return fmt.Errorf("%w: decompress payload: %w", errs.ErrInvalidSnapshot, err)
	}
	if len(payload) != header.PayloadSize() {
		return fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrInvalidSnapshot, len(payload), header.PayloadSize())
	}
	if sum := hash.Sum64(payload); sum != header.Checksum {
		return fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	samples := make([]float64, int(header.LeadLen)+int(header.LagLen))
	endian.DecodeFloat64s(endian.GetLittleEndianEngine(), payload, samples)

	d.lead.Reset()
	d.lag.Reset()
	for _, v := range samples[:header.LeadLen] {
		d.lead.Push(v)
	}
	for _, v := range samples[header.LeadLen:] {
		d.lag.Push(v)
	}
	d.lastTimestamp = header.LastTimestamp()
	d.metrics.observeFill(d.fillRatio())

	d.logger.WithFields(logrus.Fields{
		"lead_len":    d.lead.Len(),
		"lag_len":     d.lag.Len(),
		"compression": header.Compression.String(),
	}).Info("detector state restored")

	return nil
}

// NewFromSnapshot creates a Detector with opts and restores data into it.
func NewFromSnapshot(data []byte, opts ...Option) (*Detector, error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := d.Restore(data); err != nil {
		return nil, err
	}

	return d, nil
}
