package bitmap

import (
	"encoding/json"
	"testing"

	"github.com/arloliu/saxbitmap/errs"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("row-major sorted layout", func(t *testing.T) {
		table := CountFrequencies([]string{"abcd", "dcba"}, Combinations("abcd", 2))
		bm, err := Build(table)
		require.NoError(t, err)
		require.Equal(t, 4, bm.Side())

		want := [][]float64{
			{0, 1, 0, 0}, // aa ab ac ad
			{1, 0, 1, 0}, // ba bb bc bd
			{0, 1, 0, 1}, // ca cb cc cd
			{0, 0, 1, 0}, // da db dc dd
		}
		require.Equal(t, want, bm.Rows())
		require.Equal(t, 1.0, bm.At(1, 2))
	})

	t.Run("normalizes by max", func(t *testing.T) {
		bm, err := Build(FrequencyTable{"aa": 4, "ab": 2, "ba": 1, "bb": 0})
		require.NoError(t, err)
		require.Equal(t, []float64{1, 0.5, 0.25, 0}, bm.Cells())
	})

	t.Run("all zero table", func(t *testing.T) {
		bm, err := Build(CountFrequencies(nil, Combinations("abc", 2)))
		require.NoError(t, err)
		require.Equal(t, 3, bm.Side())
		require.Equal(t, make([]float64, 9), bm.Cells())
	})

	t.Run("does not modify the table", func(t *testing.T) {
		table := FrequencyTable{"aa": 4, "ab": 2, "ba": 1, "bb": 0}
		_, err := Build(table)
		require.NoError(t, err)
		require.Equal(t, 4.0, table["aa"])
	})

	t.Run("non-square table", func(t *testing.T) {
		_, err := Build(CountFrequencies(nil, Combinations("ab", 3)))
		require.ErrorIs(t, err, errs.ErrNonSquareBitmap)
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := Build(FrequencyTable{})
		require.ErrorIs(t, err, errs.ErrEmptyFrequencyTable)
	})
}

func TestBuild_CellsInUnitInterval(t *testing.T) {
	combos := Combinations("abcd", 2)
	inputs := [][]string{
		{"aaaaaaaaaa"},
		{"abcdabcdab", "ddddcccbba"},
		{"abcabcabca", "dadadadada", "cccccccccd"},
	}

	for _, words := range inputs {
		bm, err := Build(CountFrequencies(words, combos))
		require.NoError(t, err)
		for _, v := range bm.Cells() {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNewBitmap(t *testing.T) {
	cells := []float64{0.1, 0.2, 0.3, 0.4}
	bm, err := NewBitmap(2, cells)
	require.NoError(t, err)
	require.Equal(t, cells, bm.Cells())

	cells[0] = 9
	require.Equal(t, 0.1, bm.At(0, 0), "cells must be copied")

	_, err = NewBitmap(2, []float64{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrBitmapShapeMismatch)

	empty, err := NewBitmap(0, nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
	require.Empty(t, empty.Cells())
	require.Empty(t, empty.Rows())
	require.Nil(t, empty.Matrix())
	require.Equal(t, "Bitmap{}", empty.String())
}

func TestBitmap_Immutable(t *testing.T) {
	bm, err := NewBitmap(2, []float64{0, 0.5, 1, 0.25})
	require.NoError(t, err)

	bm.Cells()[0] = 42
	bm.Rows()[0][0] = 42
	bm.Matrix().Set(0, 0, 42)

	require.Equal(t, 0.0, bm.At(0, 0))
}

func TestBitmap_EqualAndFingerprint(t *testing.T) {
	a, err := NewBitmap(2, []float64{0, 0.5, 1, 0.25})
	require.NoError(t, err)
	b, err := NewBitmap(2, []float64{0, 0.5, 1, 0.25})
	require.NoError(t, err)
	c, err := NewBitmap(2, []float64{0, 0.5, 1, 0.5})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.False(t, a.Equal(c))
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	require.False(t, a.Equal(Bitmap{}))
	require.True(t, Bitmap{}.Equal(Bitmap{}))
}

func TestBitmap_JSON(t *testing.T) {
	bm, err := NewBitmap(2, []float64{0, 0.5, 1, 0.25})
	require.NoError(t, err)

	data, err := json.Marshal(bm)
	require.NoError(t, err)
	require.JSONEq(t, `[[0,0.5],[1,0.25]]`, string(data))

	var decoded Bitmap
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, bm.Equal(decoded))

	require.ErrorIs(t, json.Unmarshal([]byte(`[[0,1],[1]]`), &decoded), errs.ErrBitmapShapeMismatch)
}

func TestBitmap_String(t *testing.T) {
	bm, err := NewBitmap(2, []float64{0, 0.5, 1, 0.25})
	require.NoError(t, err)
	require.Contains(t, bm.String(), "Bitmap{side: 2}")
}
