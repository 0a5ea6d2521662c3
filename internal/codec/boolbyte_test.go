package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolByteSetGet(t *testing.T) {
	var b BoolByte
	require.NoError(t, b.Set(0, true))
	require.NoError(t, b.Set(3, true))
	require.NoError(t, b.Set(7, true))

	for i := 0; i < 8; i++ {
		v, err := b.Get(i)
		require.NoError(t, err)
		want := i == 0 || i == 3 || i == 7
		assert.Equal(t, want, v, "bit %d", i)
	}
}

func TestBoolByteInvalidIndex(t *testing.T) {
	var b BoolByte
	_, err := b.Get(8)
	assert.ErrorIs(t, err, ErrInvalidBitIndex)

	err = b.Set(-1, true)
	assert.ErrorIs(t, err, ErrInvalidBitIndex)
}

func TestBoolByteRoundTripsThroughByte(t *testing.T) {
	var b BoolByte
	require.NoError(t, b.Set(2, true))
	require.NoError(t, b.Set(5, true))

	restored := NewBoolByte(b.Byte())
	assert.Equal(t, b, restored)
}
