package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "catalog", cfg.CatalogDir)
	assert.Equal(t, ".dplr", cfg.PlaintextSuffix)
	assert.Equal(t, ".plr", cfg.EncryptedSuffix)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terra-save.yaml")
	cfg := Config{
		CatalogDir:      "my-catalog",
		LogLevel:        "debug",
		PlaintextSuffix: ".txt",
		EncryptedSuffix: ".bin",
	}
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terra-save.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: warn\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", got.LogLevel)
	assert.Equal(t, "catalog", got.CatalogDir)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
