package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirReadsAllThreeFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"),
		[]byte(`[{"ID":1,"Name":"Wood","InternalName":"WoodBlock"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "buffs.json"),
		[]byte(`[{"ID":1,"Name":"Regeneration"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefixes.json"),
		[]byte(`[{"ID":5,"Name":"Legendary"}]`), 0o644))

	items, buffs, prefixes, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "WoodBlock", items[0].InternalName)
	require.Len(t, buffs, 1)
	assert.Equal(t, "Regeneration", buffs[0].Name)
	require.Len(t, prefixes, 1)
	assert.Equal(t, "Legendary", prefixes[0].Name)
}

func TestLoadDirMissingFilesComeBackEmpty(t *testing.T) {
	dir := t.TempDir()

	items, buffs, prefixes, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, buffs)
	assert.Empty(t, prefixes)
}

func TestLoadDirMalformedJSONErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte(`not json`), 0o644))

	_, _, _, err := LoadDir(dir)
	assert.Error(t, err)
}
