package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-rs/save-codec/internal/catalog"
	"github.com/terra-rs/save-codec/internal/codec"
)

func writeSample(t *testing.T, dir, name string, version int32) string {
	t.Helper()
	p := codec.NewPlayer()
	p.Header.Version = version
	p.Header.Name = name
	// Both sample versions below are >= 198, so every bank tier is present
	// at the post-1.0.6 item-slot count (50 inventory, 40 per bank).
	p.Inventory = make([]codec.Item, 50)
	p.PiggyBank = make([]codec.Item, 40)
	p.Safe = make([]codec.Item, 40)
	p.DefendersForge = make([]codec.Item, 40)
	p.VoidVault = make([]codec.Item, 40)

	raw, err := codec.Save(p, catalog.NewStore(nil, nil, nil))
	require.NoError(t, err)

	path := filepath.Join(dir, name+".dplr")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestRunRoundTripsEverySampleInDir(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "alice", 230)
	writeSample(t, dir, "bob", 279)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a save"), 0o644))

	runID, results, err := Run(dir, catalog.NewStore(nil, nil, nil))
	require.NoError(t, err)
	assert.NotEqual(t, runID.String(), "")
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %v", r.Path, r.Err)
		assert.NoError(t, r.Err)
	}
}

func TestRunReportsFailureForCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.dplr"), []byte{0x01}, 0o644))

	_, results, err := Run(dir, catalog.NewStore(nil, nil, nil))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Error(t, results[0].Err)
}

func TestRunEmptyDirYieldsNoResults(t *testing.T) {
	dir := t.TempDir()
	_, results, err := Run(dir, catalog.NewStore(nil, nil, nil))
	require.NoError(t, err)
	assert.Empty(t, results)
}
