package codec

// Spawnpoint is one saved bed/spawn location. The on-disk list is
// sentinel-terminated rather than length-prefixed.
type Spawnpoint struct {
	X, Y, ID int32
	Name     string
}

const spawnpointSentinel int32 = -1

// readSpawnpoints reads spawnpoints until the sentinel x = -1, capped at
// SpawnpointLimit iterations as a guard against a corrupted stream
// that never emits the sentinel.
func readSpawnpoints(r *reader) ([]Spawnpoint, error) {
	var spawnpoints []Spawnpoint
	for i := 0; i < SpawnpointLimit; i++ {
		x, err := r.readI32()
		if err != nil {
			return nil, err
		}
		if x == spawnpointSentinel {
			return spawnpoints, nil
		}
		y, err := r.readI32()
		if err != nil {
			return nil, err
		}
		id, err := r.readI32()
		if err != nil {
			return nil, err
		}
		name, err := r.readLPString()
		if err != nil {
			return nil, err
		}
		spawnpoints = append(spawnpoints, Spawnpoint{X: x, Y: y, ID: id, Name: name})
	}
	return spawnpoints, nil
}

// writeSpawnpoints emits every spawnpoint followed by the terminating
// sentinel, regardless of list length.
func writeSpawnpoints(w *writer, spawnpoints []Spawnpoint) error {
	for _, sp := range spawnpoints {
		if err := w.writeI32(sp.X); err != nil {
			return err
		}
		if err := w.writeI32(sp.Y); err != nil {
			return err
		}
		if err := w.writeI32(sp.ID); err != nil {
			return err
		}
		if err := w.writeLPString(sp.Name); err != nil {
			return err
		}
	}
	return w.writeI32(spawnpointSentinel)
}
