// Package compress provides the codecs used to shrink detector snapshot payloads.
//
// A snapshot payload is the raw float64 content of the lead and lag windows.
// Monitoring signals are often slowly varying or quantized, so the payload
// compresses well with general-purpose algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Codecs are looked up by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// The Zstd codec uses github.com/klauspost/compress/zstd by default. Building
// with the gozstd tag (and cgo enabled) switches it to the cgo-based
// github.com/valyala/gozstd binding. Both produce standard Zstandard frames,
// so snapshots written by one build are readable by the other.
//
// All codecs are stateless values and safe for concurrent use.
package compress
