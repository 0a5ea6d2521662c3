package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreLookups(t *testing.T) {
	s, err := OpenSQLiteStore(sampleItems())
	require.NoError(t, err)
	defer s.Close()

	id, ok := s.IDByInternalName("StoneBlock")
	assert.True(t, ok)
	assert.Equal(t, int32(2), id)

	name, ok := s.InternalNameByID(1)
	assert.True(t, ok)
	assert.Equal(t, "WoodBlock", name)

	id, ok = s.IDByDisplayName("Wood")
	assert.True(t, ok)
	assert.Equal(t, int32(1), id)

	display, ok := s.DisplayNameByID(2)
	assert.True(t, ok)
	assert.Equal(t, "Stone Block", display)
}

func TestSQLiteStoreLookupMissReturnsFalse(t *testing.T) {
	s, err := OpenSQLiteStore(sampleItems())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.IDByInternalName("Nope")
	assert.False(t, ok)
}
