package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneyPowersRoundTripOnJourneyDifficulty(t *testing.T) {
	jp := JourneyPowers{Godmode: true, FarPlacement: false, Spawnrate: 0.25}

	var buf bytes.Buffer
	require.NoError(t, saveJourneyPowers(newWriter(&buf), DifficultyJourney, jp))

	got, err := loadJourneyPowers(newReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, jp, got)
}

func TestJourneyPowersDefaultedOnNonJourneyDifficulty(t *testing.T) {
	jp := JourneyPowers{Godmode: true, FarPlacement: false, Spawnrate: 0.9}

	var buf bytes.Buffer
	require.NoError(t, saveJourneyPowers(newWriter(&buf), DifficultyClassic, jp))

	got, err := loadJourneyPowers(newReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, defaultJourneyPowers, got)
}
