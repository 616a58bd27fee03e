// Package bitmap turns lists of SAX words into fixed-shape frequency bitmaps
// and measures the distance between them.
//
// The pipeline for one window is:
//
//	combos := bitmap.Combinations("abcd", 2)        // 16 subwords: "aa", "ab", ... "dd"
//	table := bitmap.CountFrequencies(words, combos) // overlapping occurrence counts
//	bm, err := bitmap.Build(table)                  // 4x4 matrix normalized to [0, 1]
//
// and two bitmaps are compared with Dissimilarity, the sum of squared cell
// differences.
//
// Every combination is present in a FrequencyTable even when its count is
// zero, so bitmaps built from different windows always have the same shape and
// cell order (the sorted combination keys, laid out row-major). The number of
// combinations, alphabetSize^subwordLength, must be a perfect square.
package bitmap
