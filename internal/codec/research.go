package codec

// ResearchItem is one entry in the Journey-mode research list: an item
// sacrificed a number of times, recorded by internal name rather than id
// since research predates a stable numeric catalog in some builds.
type ResearchItem struct {
	InternalName string
	Stack        int32
}

// readResearch reads the research list (present when version >= 218). At
// version >= 282 a leading boolean precedes the count; the schedule treats
// it as opaque (no field of Player derives from it), but its value is
// still carried so a >= 282 file round-trips byte-identically.
func readResearch(r *reader, version int32) ([]ResearchItem, bool, error) {
	var flag bool
	if version >= 282 {
		f, err := r.readBool()
		if err != nil {
			return nil, false, err
		}
		flag = f
	}

	count, err := r.readI32()
	if err != nil {
		return nil, false, err
	}

	items := make([]ResearchItem, 0, count)
	for i := int32(0); i < count; i++ {
		name, err := r.readLPString()
		if err != nil {
			return nil, false, err
		}
		stack, err := r.readI32()
		if err != nil {
			return nil, false, err
		}
		items = append(items, ResearchItem{InternalName: name, Stack: stack})
	}
	return items, flag, nil
}

func writeResearch(w *writer, version int32, items []ResearchItem, flag bool) error {
	if version >= 282 {
		if err := w.writeBool(flag); err != nil {
			return err
		}
	}

	if err := w.writeI32(int32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := w.writeLPString(item.InternalName); err != nil {
			return err
		}
		if err := w.writeI32(item.Stack); err != nil {
			return err
		}
	}
	return nil
}
