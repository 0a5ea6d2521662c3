package codec

// Loadout holds one of a Player's three equipment-preset slots: armor,
// vanity armor, and armor dyes are fixed at 3 slots; accessories, vanity
// accessories, and accessory dyes scale with AccessoryCount. Visibility is
// a 10-bit mask (hide-on-character, one bit per armor+accessory slot).
type Loadout struct {
	Armor            [ArmorCount]Item
	Accessories      []Item
	VanityArmor      [ArmorCount]Item
	VanityAccessories []Item
	ArmorDyes        [ArmorCount]Item
	AccessoryDyes    []Item
	Visibility       [HiddenVisualCount]bool
}

// NewLoadout returns a Loadout with accessory-family slices sized for the
// accessory count implied by version (5 below version 124, 7 from 124 on).
func NewLoadout(version int32) Loadout {
	n := accessoryCount(version)
	return Loadout{
		Accessories:       make([]Item, n),
		VanityAccessories: make([]Item, n),
		AccessoryDyes:     make([]Item, n),
	}
}

func accessoryCount(version int32) int {
	if version >= 124 {
		return AccessoryCount
	}
	return 5
}

// loadoutItemFlags builds the flags for one loadout item slot. stack and
// prefix are supplied by the caller rather than derived from version: the
// top-level loadout (armor/accessories carried outside the preset
// multiplexer) never has a stack and gates prefix on version>=36, while
// the loadout multiplexer (version>=262) always reads both.
func loadoutItemFlags(version int32, stack, prefix bool) itemFlags {
	if version < 38 {
		return itemFlags{InternalName: true}
	}
	return itemFlags{ID: true, Stack: stack, Prefix: prefix}
}

// loadItems reads one fixed-size item slice, using the legacy name form
// below version 38 exactly as the top-level item schedule does.
func loadItems(r *reader, cat Catalog, version int32, stack, prefix bool, items []Item) error {
	for i := range items {
		if version < 38 {
			item, err := readLegacyItem(r, cat, version, stack)
			if err != nil {
				return err
			}
			items[i] = item
			continue
		}
		item, err := readItem(r, cat, loadoutItemFlags(version, stack, prefix))
		if err != nil {
			return err
		}
		items[i] = item
	}
	return nil
}

func saveItems(w *writer, cat Catalog, version int32, stack, prefix bool, items []Item) error {
	for _, item := range items {
		if version < 38 {
			if err := writeLegacyItem(w, cat, version, stack, item); err != nil {
				return err
			}
			continue
		}
		if err := writeItem(w, cat, loadoutItemFlags(version, stack, prefix), item); err != nil {
			return err
		}
	}
	return nil
}

func skipItems(r *reader, version int32, stack, prefix bool, n int) error {
	for i := 0; i < n; i++ {
		if version < 38 {
			if _, err := r.readLPString(); err != nil {
				return err
			}
			if stack {
				if _, err := r.readI32(); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := r.readI32(); err != nil {
			return err
		}
		if stack {
			if _, err := r.readI32(); err != nil {
				return err
			}
		}
		if prefix {
			if _, err := r.readU8(); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadLoadout reads the item portion of a loadout payload (armor,
// accessories, vanity armor, vanity accessories, armor dyes, accessory
// dyes), each gated by its own version predicate. stack and prefix are
// forwarded to every item slot exactly as the caller supplies them.
func loadLoadout(r *reader, cat Catalog, version int32, stack, prefix bool) (Loadout, error) {
	lo := NewLoadout(version)

	if err := loadItems(r, cat, version, stack, prefix, lo.Armor[:]); err != nil {
		return Loadout{}, err
	}
	if err := loadItems(r, cat, version, stack, prefix, lo.Accessories); err != nil {
		return Loadout{}, err
	}
	if version >= 6 {
		if err := loadItems(r, cat, version, stack, prefix, lo.VanityArmor[:]); err != nil {
			return Loadout{}, err
		}
	}
	if version >= 81 {
		if err := loadItems(r, cat, version, stack, prefix, lo.VanityAccessories); err != nil {
			return Loadout{}, err
		}
	}
	if version >= 47 {
		if err := loadItems(r, cat, version, stack, prefix, lo.ArmorDyes[:]); err != nil {
			return Loadout{}, err
		}
	}
	if version >= 81 {
		if err := loadItems(r, cat, version, stack, prefix, lo.AccessoryDyes); err != nil {
			return Loadout{}, err
		}
	}

	return lo, nil
}

// saveLoadout mirrors loadLoadout.
func saveLoadout(w *writer, cat Catalog, version int32, stack, prefix bool, lo Loadout) error {
	if err := saveItems(w, cat, version, stack, prefix, lo.Armor[:]); err != nil {
		return err
	}
	if err := saveItems(w, cat, version, stack, prefix, lo.Accessories); err != nil {
		return err
	}
	if version >= 6 {
		if err := saveItems(w, cat, version, stack, prefix, lo.VanityArmor[:]); err != nil {
			return err
		}
	}
	if version >= 81 {
		if err := saveItems(w, cat, version, stack, prefix, lo.VanityAccessories); err != nil {
			return err
		}
	}
	if version >= 47 {
		if err := saveItems(w, cat, version, stack, prefix, lo.ArmorDyes[:]); err != nil {
			return err
		}
	}
	if version >= 81 {
		if err := saveItems(w, cat, version, stack, prefix, lo.AccessoryDyes); err != nil {
			return err
		}
	}
	return nil
}

// skipLoadout reads and discards a full loadout payload (items, then the
// per-bool visibility mask) without allocating item slices — used by the
// loadout multiplexer to advance the stream past the non-active loadout
// slot's on-disk payload. Called only from the multiplexer, so stack and
// prefix are always true and the visuals use the per-bool form.
func skipLoadout(r *reader, version int32) error {
	const stack, prefix = true, true

	if err := skipItems(r, version, stack, prefix, ArmorCount); err != nil {
		return err
	}
	if err := skipItems(r, version, stack, prefix, accessoryCount(version)); err != nil {
		return err
	}
	if version >= 6 {
		if err := skipItems(r, version, stack, prefix, ArmorCount); err != nil {
			return err
		}
	}
	if version >= 81 {
		if err := skipItems(r, version, stack, prefix, accessoryCount(version)); err != nil {
			return err
		}
	}
	if version >= 47 {
		if err := skipItems(r, version, stack, prefix, ArmorCount); err != nil {
			return err
		}
	}
	if version >= 81 {
		if err := skipItems(r, version, stack, prefix, accessoryCount(version)); err != nil {
			return err
		}
	}
	return skipLoadoutVisuals(r, version, false)
}

// loadLoadoutVisuals reads the 10-bit visibility mask: a boolean-byte form
// (1-2 bytes) when useBoolByte is true, or ten individual boolean bytes
// otherwise. The caller picks the form — the top-level loadout always
// uses the boolean-byte form, the loadout multiplexer never does — it is
// not derived from version.
func loadLoadoutVisuals(r *reader, version int32, useBoolByte bool) ([HiddenVisualCount]bool, error) {
	var vis [HiddenVisualCount]bool

	if useBoolByte {
		b, err := r.readBoolByte()
		if err != nil {
			return vis, err
		}
		for i := 0; i < 8; i++ {
			v, _ := b.Get(i)
			vis[i] = v
		}
		if version >= 124 {
			b2, err := r.readBoolByte()
			if err != nil {
				return vis, err
			}
			for i := 0; i < 2; i++ {
				v, _ := b2.Get(i)
				vis[8+i] = v
			}
		}
		return vis, nil
	}

	for i := 0; i < HiddenVisualCount; i++ {
		v, err := r.readBool()
		if err != nil {
			return vis, err
		}
		vis[i] = v
	}
	return vis, nil
}

// saveLoadoutVisuals mirrors loadLoadoutVisuals.
func saveLoadoutVisuals(w *writer, version int32, useBoolByte bool, vis [HiddenVisualCount]bool) error {
	if useBoolByte {
		var b BoolByte
		for i := 0; i < 8; i++ {
			if err := b.Set(i, vis[i]); err != nil {
				return err
			}
		}
		if err := w.writeBoolByte(b); err != nil {
			return err
		}
		if version >= 124 {
			var b2 BoolByte
			for i := 0; i < 2; i++ {
				if err := b2.Set(i, vis[8+i]); err != nil {
					return err
				}
			}
			if err := w.writeBoolByte(b2); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < HiddenVisualCount; i++ {
		if err := w.writeBool(vis[i]); err != nil {
			return err
		}
	}
	return nil
}

// skipLoadoutVisuals discards the visibility mask in the same shape
// loadLoadoutVisuals would read it.
func skipLoadoutVisuals(r *reader, version int32, useBoolByte bool) error {
	_, err := loadLoadoutVisuals(r, version, useBoolByte)
	return err
}
