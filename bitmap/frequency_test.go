package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sumValues(table FrequencyTable) float64 {
	total := 0.0
	for _, v := range table {
		total += v
	}

	return total
}

func TestCountFrequencies(t *testing.T) {
	t.Run("overlapping occurrences", func(t *testing.T) {
		table := CountFrequencies([]string{"aaaa"}, Combinations("ab", 2))
		require.Equal(t, FrequencyTable{"aa": 3, "ab": 0, "ba": 0, "bb": 0}, table)
	})

	t.Run("counts across words", func(t *testing.T) {
		table := CountFrequencies([]string{"abcd", "dcba", "abab"}, Combinations("abcd", 2))
		require.Len(t, table, 16)
		require.Equal(t, 3.0, table["ab"])
		require.Equal(t, 2.0, table["ba"])
		require.Equal(t, 1.0, table["bc"])
		require.Equal(t, 1.0, table["cd"])
		require.Equal(t, 1.0, table["dc"])
		require.Equal(t, 1.0, table["cb"])
		require.Equal(t, 0.0, table["aa"])
		require.Equal(t, 9.0, sumValues(table))
	})

	t.Run("shape independent of content", func(t *testing.T) {
		combos := Combinations("abcd", 2)
		for _, words := range [][]string{nil, {}, {"a"}, {"aaaaaaaa"}, {"abcdabcd", "ddcc"}} {
			table := CountFrequencies(words, combos)
			require.Len(t, table, 16)
			for _, c := range combos {
				require.Contains(t, table, c)
			}
		}
	})

	t.Run("symbols outside alphabet are ignored", func(t *testing.T) {
		table := CountFrequencies([]string{"axab"}, Combinations("ab", 2))
		require.Equal(t, 1.0, table["ab"])
		require.Equal(t, 1.0, sumValues(table))
	})

	t.Run("longer subwords", func(t *testing.T) {
		table := CountFrequencies([]string{"aaaab"}, Combinations("ab", 3))
		require.Len(t, table, 8)
		require.Equal(t, 2.0, table["aaa"])
		require.Equal(t, 1.0, table["aab"])
	})

	t.Run("no combinations", func(t *testing.T) {
		table := CountFrequencies([]string{"abcd"}, nil)
		require.Empty(t, table)
	})
}

func TestFrequencyTable_Normalized(t *testing.T) {
	t.Run("divides by max", func(t *testing.T) {
		table := FrequencyTable{"aa": 4, "ab": 2, "ba": 0, "bb": 1}
		norm := table.Normalized()
		require.Equal(t, FrequencyTable{"aa": 1, "ab": 0.5, "ba": 0, "bb": 0.25}, norm)
		require.Equal(t, 4.0, table["aa"], "receiver must not be modified")
	})

	t.Run("all zero", func(t *testing.T) {
		table := FrequencyTable{"aa": 0, "ab": 0}
		require.Equal(t, FrequencyTable{"aa": 0, "ab": 0}, table.Normalized())
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, FrequencyTable{}.Normalized())
		require.Equal(t, 0.0, FrequencyTable{}.Max())
	})
}

func TestFrequencyTable_Keys(t *testing.T) {
	table := FrequencyTable{"ba": 1, "aa": 2, "bb": 0, "ab": 3}
	require.Equal(t, []string{"aa", "ab", "ba", "bb"}, table.Keys())
	require.Equal(t, 3.0, table.Max())
}

func BenchmarkCountFrequencies(b *testing.B) {
	combos := Combinations("abcd", 2)
	words := make([]string, 90)
	for i := range words {
		words[i] = "abccddcbaa"
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = CountFrequencies(words, combos)
	}
}
