package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnpointRoundTrip(t *testing.T) {
	sps := []Spawnpoint{
		{X: 100, Y: 200, ID: 1, Name: "Home"},
		{X: -5, Y: 0, ID: 2, Name: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, writeSpawnpoints(newWriter(&buf), sps))

	got, err := readSpawnpoints(newReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, sps, got)
}

func TestSpawnpointEmptyListIsJustSentinel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSpawnpoints(newWriter(&buf), nil))
	assert.Equal(t, 4, buf.Len()) // one int32 sentinel, nothing else

	got, err := readSpawnpoints(newReader(&buf))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSpawnpointReadCapsAtLimit(t *testing.T) {
	var buf bytes.Buffer
	w := newWriter(&buf)
	// Write more than SpawnpointLimit entries with no sentinel, to verify
	// the reader doesn't loop forever on a corrupted stream.
	for i := 0; i < SpawnpointLimit+5; i++ {
		require.NoError(t, w.writeI32(int32(i)))
		require.NoError(t, w.writeI32(0))
		require.NoError(t, w.writeI32(0))
		require.NoError(t, w.writeLPString(""))
	}

	got, err := readSpawnpoints(newReader(&buf))
	require.NoError(t, err)
	assert.Len(t, got, SpawnpointLimit)
}
