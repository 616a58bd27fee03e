package bitmap

import (
	"maps"
	"slices"
)

// FrequencyTable maps every subword combination to its occurrence count,
// or to a normalized frequency once Normalized has been applied.
type FrequencyTable map[string]float64

// CountFrequencies counts the occurrences of every combination across words.
//
// Occurrences may overlap: "aa" occurs 3 times in "aaaa". Every combination is
// present in the result, with 0 if it never occurs, so the table shape depends
// only on combinations. Subwords that are not combinations are ignored.
func CountFrequencies(words []string, combinations []string) FrequencyTable {
	table := make(FrequencyTable, len(combinations))
	lengths := make([]int, 0, 1)
	for _, c := range combinations {
		table[c] = 0
		if len(c) > 0 && !slices.Contains(lengths, len(c)) {
			lengths = append(lengths, len(c))
		}
	}

	for _, word := range words {
		for _, n := range lengths {
			for i := 0; i+n <= len(word); i++ {
				if _, ok := table[word[i:i+n]]; ok {
					table[word[i:i+n]]++
				}
			}
		}
	}

	return table
}

// Max returns the largest value in the table, or 0 for an empty table.
func (t FrequencyTable) Max() float64 {
	maxValue := 0.0
	first := true
	for _, v := range t {
		if first || v > maxValue {
			maxValue = v
			first = false
		}
	}

	return maxValue
}

// Keys returns the table keys in sorted order.
func (t FrequencyTable) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Normalized returns a copy of the table with every value divided by Max().
// If Max() is 0, every value of the copy is 0. The receiver is not modified.
func (t FrequencyTable) Normalized() FrequencyTable {
	maxValue := t.Max()
	out := make(FrequencyTable, len(t))
	for k, v := range t {
		if maxValue != 0 {
			out[k] = v / maxValue
		} else {
			out[k] = 0
		}
	}

	return out
}
