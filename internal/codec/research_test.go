package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchRoundTripBelow282HasNoFlag(t *testing.T) {
	version := int32(218)
	items := []ResearchItem{{InternalName: "Wood", Stack: 999}}

	var buf bytes.Buffer
	require.NoError(t, writeResearch(newWriter(&buf), version, items, true))

	got, flag, err := readResearch(newReader(&buf), version)
	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.False(t, flag, "flag byte isn't on the wire below version 282")
}

func TestResearchRoundTripAt282CarriesFlag(t *testing.T) {
	version := int32(282)
	items := []ResearchItem{{InternalName: "Stone", Stack: 500}}

	for _, flag := range []bool{true, false} {
		var buf bytes.Buffer
		require.NoError(t, writeResearch(newWriter(&buf), version, items, flag))

		got, gotFlag, err := readResearch(newReader(&buf), version)
		require.NoError(t, err)
		assert.Equal(t, items, got)
		assert.Equal(t, flag, gotFlag)
	}
}

func TestResearchEmptyListIsJustCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResearch(newWriter(&buf), 218, nil, false))
	assert.Equal(t, 4, buf.Len())

	got, _, err := readResearch(newReader(&buf), 218)
	require.NoError(t, err)
	assert.Empty(t, got)
}
