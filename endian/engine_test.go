package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestFloat64sRoundTrip(t *testing.T) {
	values := []float64{0, -1.5, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1)}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := AppendFloat64s(engine, nil, values)
		require.Len(t, buf, len(values)*8)

		out := make([]float64, len(values))
		require.True(t, DecodeFloat64s(engine, buf, out))
		require.Equal(t, values, out)
	}
}

func TestAppendFloat64s_LittleEndianLayout(t *testing.T) {
	buf := AppendFloat64s(GetLittleEndianEngine(), []byte{0xff}, []float64{1})
	require.Equal(t, []byte{0xff, 0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, buf)
}

func TestDecodeFloat64s_ShortInput(t *testing.T) {
	out := []float64{42, 42}
	require.False(t, DecodeFloat64s(GetLittleEndianEngine(), make([]byte, 15), out))
	require.Equal(t, []float64{42, 42}, out)

	require.True(t, DecodeFloat64s(GetLittleEndianEngine(), nil, nil))
}
