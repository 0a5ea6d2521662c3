package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessoryCountByVersion(t *testing.T) {
	assert.Equal(t, 5, accessoryCount(123))
	assert.Equal(t, AccessoryCount, accessoryCount(124))
}

func TestLoadoutRoundTrip(t *testing.T) {
	cat := newFakeCatalog()
	version := int32(230)
	lo := NewLoadout(version)
	lo.Armor[0] = Item{ID: 11, Stack: 1}
	lo.Accessories[0] = Item{ID: 22, Stack: 1, Prefix: 3}
	lo.VanityArmor[1] = Item{ID: 33, Stack: 1}
	lo.ArmorDyes[2] = Item{ID: 44, Stack: 1}

	// stack=true, prefix=true matches the loadout multiplexer call site
	// (version>=262); the top-level loadout call never sets stack.
	var buf bytes.Buffer
	require.NoError(t, saveLoadout(newWriter(&buf), cat, version, true, true, lo))

	got, err := loadLoadout(newReader(&buf), cat, version, true, true)
	require.NoError(t, err)
	assert.Equal(t, lo, got)
}

func TestLoadoutTopLevelCallNeverWritesStack(t *testing.T) {
	cat := newFakeCatalog()
	version := int32(230)
	lo := NewLoadout(version)
	lo.Armor[0] = Item{ID: 11, Stack: 5}

	var buf bytes.Buffer
	require.NoError(t, saveLoadout(newWriter(&buf), cat, version, false, version >= 36, lo))

	got, err := loadLoadout(newReader(&buf), cat, version, false, version >= 36)
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.Armor[0].Stack, "stack normalizes to 1 since no stack field is on the wire")
}

func TestLoadoutVisualsRoundTripBothForms(t *testing.T) {
	var vis [HiddenVisualCount]bool
	vis[0] = true
	vis[9] = true

	for _, version := range []int32{123, 124, 261, 262, 279} {
		for _, useBoolByte := range []bool{true, false} {
			var buf bytes.Buffer
			require.NoError(t, saveLoadoutVisuals(newWriter(&buf), version, useBoolByte, vis))

			got, err := loadLoadoutVisuals(newReader(&buf), version, useBoolByte)
			require.NoError(t, err)
			// Below version 124 the boolean-byte form has no second byte, so
			// bits 8 and 9 are not on the wire and come back false.
			want := vis
			if useBoolByte && version < 124 {
				want[8], want[9] = false, false
			}
			assert.Equal(t, want, got, "version %d useBoolByte %v", version, useBoolByte)
		}
	}
}

func TestSkipLoadoutAdvancesExactlyAsLoadLoadoutWould(t *testing.T) {
	cat := newFakeCatalog()
	version := int32(230)
	lo := NewLoadout(version)
	lo.Armor[0] = Item{ID: 11, Stack: 1}

	// skipLoadout always assumes stack=true, prefix=true, useBoolByte=false
	// (it is only ever called from the loadout multiplexer).
	var buf bytes.Buffer
	require.NoError(t, saveLoadout(newWriter(&buf), cat, version, true, true, lo))
	require.NoError(t, saveLoadoutVisuals(newWriter(&buf), version, false, lo.Visibility))

	trailer := []byte{0xAA, 0xBB}
	buf.Write(trailer)

	r := newReader(&buf)
	require.NoError(t, skipLoadout(r, version))

	rest := make([]byte, len(trailer))
	require.NoError(t, r.fill(rest))
	assert.Equal(t, trailer, rest)
}
