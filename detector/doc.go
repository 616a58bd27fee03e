// Package detector implements a streaming SAX-bitmap anomaly detector.
//
// A Detector keeps two adjacent sliding windows over a univariate signal: a
// short lead window holding the most recent samples and a longer lag window
// holding the samples that came before them. Once both windows are full,
// every new sample triggers one analysis cycle:
//
//  1. each window is cut into features of Config.WindowSize samples and every
//     feature is encoded as a SAX word;
//  2. the subwords of length Config.RecursionLevel are counted over all words
//     of a window and arranged into a normalized square bitmap;
//  3. the score is the sum of squared cell differences between the lead and
//     lag bitmaps.
//
// A high score means the recent behavior of the signal differs from its
// longer-term behavior.
//
// Basic usage:
//
//	d, err := detector.New(detector.WithWindowFactor(10))
//	if err != nil {
//		return err
//	}
//	results, err := d.Detect(samples, time.Now())
//
// Window state can be checkpointed with Snapshot and brought back with Restore
// or NewFromSnapshot. A Detector is not safe for concurrent use.
package detector
