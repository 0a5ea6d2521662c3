package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterEmitsStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	adapter.Info("loaded file", F("path", "save.plr"), F("version", int32(279)), F("err", errors.New("boom")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded file", entry["message"])
	assert.Equal(t, "save.plr", entry["path"])
	assert.Equal(t, float64(279), entry["version"])
	assert.Equal(t, "boom", entry["err"])
	assert.Equal(t, "info", entry["level"])
}

func TestZerologAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	adapter.Warn("careful")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
}
