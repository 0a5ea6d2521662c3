package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULEB128RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 16384, 1 << 40} {
		var buf bytes.Buffer
		w := newWriter(&buf)
		require.NoError(t, w.writeULEB128(v))

		r := newReader(&buf)
		got, err := r.readULEB128()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestULEB128ZeroIsOneByte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newWriter(&buf).writeULEB128(0))
	assert.Equal(t, []byte{0x00}, buf.Bytes())
}

func TestLPStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "Terraria", "unicode: 日本語"} {
		var buf bytes.Buffer
		require.NoError(t, newWriter(&buf).writeLPString(s))

		got, err := newReader(&buf).readLPString()
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestLPStringEmptyIsOneByte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newWriter(&buf).writeLPString(""))
	assert.Equal(t, []byte{0x00}, buf.Bytes())
}

func TestReaderShortReadIsCorrupted(t *testing.T) {
	r := newReader(bytes.NewReader([]byte{0x01}))
	_, err := r.readI32()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1, -1, 0.5, 3.14159} {
		var buf bytes.Buffer
		require.NoError(t, newWriter(&buf).writeF32(v))
		got, err := newReader(&buf).readF32()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	c := RGB{R: 10, G: 20, B: 30}
	require.NoError(t, newWriter(&buf).writeRGB(c))
	got, err := newReader(&buf).readRGB()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
