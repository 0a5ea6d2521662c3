package codec

// Buff is one entry in the player's fixed-size buff array. The catalog
// carries display name/tooltip/type; the codec only persists id and the
// remaining duration.
type Buff struct {
	ID        int32
	TimeTicks int32
}

// buffCount returns the number of Buff records the schedule reads/writes
// for version.
func buffCount(version int32) int {
	switch {
	case version >= 252:
		return BuffCount
	case version >= 74:
		return 22
	default:
		return 10
	}
}

func readBuffs(r *reader, version int32) ([]Buff, error) {
	n := buffCount(version)
	buffs := make([]Buff, n)
	for i := 0; i < n; i++ {
		id, err := r.readI32()
		if err != nil {
			return nil, err
		}
		ticks, err := r.readI32()
		if err != nil {
			return nil, err
		}
		buffs[i] = Buff{ID: id, TimeTicks: ticks}
	}
	return buffs, nil
}

func writeBuffs(w *writer, version int32, buffs []Buff) error {
	n := buffCount(version)
	for i := 0; i < n; i++ {
		var b Buff
		if i < len(buffs) {
			b = buffs[i]
		}
		if err := w.writeI32(b.ID); err != nil {
			return err
		}
		if err := w.writeI32(b.TimeTicks); err != nil {
			return err
		}
	}
	return nil
}
