package codec

// journeyPowerID identifies one entry in the self-describing JourneyPowers
// sub-stream.
type journeyPowerID uint16

const (
	journeyPowerGodmode      journeyPowerID = 5
	journeyPowerFarPlacement journeyPowerID = 11
	journeyPowerSpawnrate    journeyPowerID = 14
)

// JourneyPowers holds the subset of Journey-mode powers this codec
// persists. Only godmode, far-placement, and spawnrate are modeled; any
// other power id encountered on load is silently ignored per the source's
// own behavior.
type JourneyPowers struct {
	Godmode      bool
	FarPlacement bool
	Spawnrate    float32
}

// defaultJourneyPowers is what a non-Journey-difficulty player's powers
// are always saved as, regardless of in-memory state.
var defaultJourneyPowers = JourneyPowers{
	Godmode:      false,
	FarPlacement: true,
	Spawnrate:    0.5,
}

// loadJourneyPowers reads the stream while the next boolean is true. An
// unknown power id is NOT followed by a payload skip — this desynchronizes
// the remainder of the stream exactly as the source does, and is
// preserved deliberately rather than fixed.
func loadJourneyPowers(r *reader) (JourneyPowers, error) {
	var jp JourneyPowers
	for {
		more, err := r.readBool()
		if err != nil {
			return JourneyPowers{}, err
		}
		if !more {
			return jp, nil
		}

		id, err := r.readU16()
		if err != nil {
			return JourneyPowers{}, err
		}

		switch journeyPowerID(id) {
		case journeyPowerGodmode:
			v, err := r.readBool()
			if err != nil {
				return JourneyPowers{}, err
			}
			jp.Godmode = v
		case journeyPowerFarPlacement:
			v, err := r.readBool()
			if err != nil {
				return JourneyPowers{}, err
			}
			jp.FarPlacement = v
		case journeyPowerSpawnrate:
			v, err := r.readF32()
			if err != nil {
				return JourneyPowers{}, err
			}
			jp.Spawnrate = v
		}
	}
}

// saveJourneyPowers emits jp's values if difficulty is Journey, otherwise
// the fixed defaults — always three entries followed by a terminating
// false, regardless of which values were written.
func saveJourneyPowers(w *writer, difficulty Difficulty, jp JourneyPowers) error {
	if difficulty != DifficultyJourney {
		jp = defaultJourneyPowers
	}

	entries := []struct {
		id      journeyPowerID
		write   func() error
	}{
		{journeyPowerGodmode, func() error { return w.writeBool(jp.Godmode) }},
		{journeyPowerFarPlacement, func() error { return w.writeBool(jp.FarPlacement) }},
		{journeyPowerSpawnrate, func() error { return w.writeF32(jp.Spawnrate) }},
	}

	for _, e := range entries {
		if err := w.writeBool(true); err != nil {
			return err
		}
		if err := w.writeU16(uint16(e.id)); err != nil {
			return err
		}
		if err := e.write(); err != nil {
			return err
		}
	}

	return w.writeBool(false)
}
