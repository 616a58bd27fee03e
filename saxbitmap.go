// Package saxbitmap provides a streaming anomaly detector for univariate
// time series based on SAX bitmaps.
//
// The detector compares the recent behavior of a signal (the lead window)
// with its longer-term behavior (the lag window). Both windows are summarized
// as Symbolic Aggregate approXimation (SAX) words, the words are reduced to
// square bitmaps of normalized subword frequencies, and the anomaly score is
// the squared distance between the two bitmaps.
//
// # Core Features
//
//   - Fixed-memory ring buffers for the lead and lag windows
//   - Configurable word size, window factors, alphabet and subword length
//   - YAML configuration files
//   - Window snapshots with optional compression (None, Zstd, S2, LZ4)
//   - Optional Prometheus metrics and logrus logging
//
// # Basic Usage
//
//	d, _ := saxbitmap.NewDefaultDetector()
//	for batch := range batches {
//	    results, err := d.Detect(batch.Samples, batch.Time)
//	    if err != nil {
//	        log.Println(err)
//	    }
//	    for _, r := range results {
//	        fmt.Println(r.Score)
//	    }
//	}
//
// # Package Structure
//
// This package provides top-level wrappers around the detector package. The
// sax and bitmap packages expose the encoding and scoring building blocks
// for use outside a streaming detector.
package saxbitmap

import (
	"github.com/arloliu/saxbitmap/detector"
)

// NewDetector creates a detector from the default configuration modified by opts.
//
// Available options:
//   - detector.WithConfig(cfg)
//   - detector.WithWordSize(n) / detector.WithWindowFactor(n)
//   - detector.WithLeadWindowFactor(n) / detector.WithLagWindowFactor(n)
//   - detector.WithRecursionLevel(n) / detector.WithAlphabetSize(n)
//   - detector.WithZeroVarianceFallback()
//   - detector.WithLogger(logger) / detector.WithMetrics(m)
//
// Returns an error if the resulting configuration is invalid.
//
// Example:
//
//	d, err := saxbitmap.NewDetector(
//	    detector.WithWindowFactor(20),
//	    detector.WithLagWindowFactor(10),
//	)
func NewDetector(opts ...detector.Option) (*detector.Detector, error) {
	return detector.New(opts...)
}

// NewDefaultDetector creates a detector with the default configuration:
//   - 10-symbol SAX words over the alphabet "abcd"
//   - 1000 samples per word
//   - a lead window of 3 words and a lag window of 30 words
//   - 2-symbol subwords counted into 4×4 bitmaps
//
// The first score is produced after 33000 samples.
func NewDefaultDetector() (*detector.Detector, error) {
	return detector.New()
}

// LoadDetector creates a detector from a YAML configuration file.
//
// Options are applied after the file configuration, so they can set the
// logger and metrics or override individual parameters.
//
// Parameters:
//   - path: YAML file accepted by detector.ParseConfig
//   - opts: additional options
//
// Returns:
//   - *detector.Detector: the created detector
//   - error: file, parse or validation errors
func LoadDetector(path string, opts ...detector.Option) (*detector.Detector, error) {
	cfg, err := detector.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return detector.New(append([]detector.Option{detector.WithConfig(cfg)}, opts...)...)
}

// RestoreDetector creates a detector with opts and loads the window state
// saved by Detector.Snapshot.
func RestoreDetector(data []byte, opts ...detector.Option) (*detector.Detector, error) {
	return detector.NewFromSnapshot(data, opts...)
}
