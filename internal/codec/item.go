package codec

// Item is the codec's view of a single item stack: the catalog (external,
// read-only) owns display names, max stack, and every other presentation
// detail. The codec only ever needs the numeric id, the stack count, the
// prefix id, and whether the stack is favourited.
type Item struct {
	ID         int32
	Stack      int32
	Prefix     uint8
	Favourited bool
}

// Catalog is the narrow read interface the codec needs to resolve items
// encoded by internal name or legacy display name. A real catalog
// (internal/catalog) backs this with either a map index or a
// modernc.org/sqlite-backed store; both satisfy this interface.
type Catalog interface {
	IDByInternalName(name string) (int32, bool)
	InternalNameByID(id int32) (string, bool)
	IDByDisplayName(name string) (int32, bool)
	DisplayNameByID(id int32) (string, bool)
}

// itemFlags selects which fields are present on the wire for one item
// slot. Exactly one of ID/InternalName must be set; both-or-neither is a
// contract violation (ErrOnlyIDOrInternalName).
type itemFlags struct {
	ID           bool
	InternalName bool
	Stack        bool
	Prefix       bool
	Favourited   bool
}

func (f itemFlags) validate() error {
	if f.ID == f.InternalName {
		return ErrOnlyIDOrInternalName
	}
	return nil
}

// readItem decodes one item slot according to flags, normalizing a zero
// stack to 1 whenever the resolved id is nonzero.
func readItem(r *reader, cat Catalog, flags itemFlags) (Item, error) {
	if err := flags.validate(); err != nil {
		return Item{}, err
	}

	var item Item

	switch {
	case flags.ID:
		id, err := r.readI32()
		if err != nil {
			return Item{}, err
		}
		item.ID = id
	case flags.InternalName:
		name, err := r.readLPString()
		if err != nil {
			return Item{}, err
		}
		if id, ok := cat.IDByInternalName(name); ok {
			item.ID = id
		}
	}

	if flags.Stack {
		stack, err := r.readI32()
		if err != nil {
			return Item{}, err
		}
		item.Stack = stack
	}

	if flags.Prefix {
		prefix, err := r.readU8()
		if err != nil {
			return Item{}, err
		}
		item.Prefix = prefix
	}

	if flags.Favourited {
		fav, err := r.readBool()
		if err != nil {
			return Item{}, err
		}
		item.Favourited = fav
	}

	if item.ID != 0 && item.Stack == 0 {
		item.Stack = 1
	}

	return item, nil
}

// writeItem mirrors readItem. When InternalName is set and the item's id
// has no catalog entry, an empty string is emitted.
func writeItem(w *writer, cat Catalog, flags itemFlags, item Item) error {
	if err := flags.validate(); err != nil {
		return err
	}

	switch {
	case flags.ID:
		if err := w.writeI32(item.ID); err != nil {
			return err
		}
	case flags.InternalName:
		name, _ := cat.InternalNameByID(item.ID)
		if err := w.writeLPString(name); err != nil {
			return err
		}
	}

	if flags.Stack {
		if err := w.writeI32(item.Stack); err != nil {
			return err
		}
	}

	if flags.Prefix {
		if err := w.writeU8(item.Prefix); err != nil {
			return err
		}
	}

	if flags.Favourited {
		if err := w.writeBool(item.Favourited); err != nil {
			return err
		}
	}

	return nil
}

// legacyNameTable maps pre-v38 display names to their modern equivalent,
// generated from a single forward list so the reverse table used by save
// cannot drift from it. Each entry also records the version ceiling it
// applied under, since several renaming eras overlap.
type legacyNameEntry struct {
	from    string
	to      string
	maxVersion int32
}

var legacyNameTable = []legacyNameEntry{
	{from: "Cobalt Helmet", to: "Jungle Hat", maxVersion: 4},
	{from: "Cobalt Breastplate", to: "Jungle Shirt", maxVersion: 4},
	{from: "Cobalt Leggings", to: "Jungle Pants", maxVersion: 4},
	{from: "Silver Helmet", to: "Iron Helmet", maxVersion: 23},
	{from: "Copper Shortsword", to: "Copper Broadsword", maxVersion: 46},
	{from: "Muramasa", to: "Night's Edge", maxVersion: 46},
}

func renameLegacy(name string, version int32) string {
	for _, e := range legacyNameTable {
		if e.from == name && version <= e.maxVersion {
			return e.to
		}
	}
	return name
}

func reverseRenameLegacy(name string, version int32) string {
	for _, e := range legacyNameTable {
		if e.to == name && version <= e.maxVersion {
			return e.from
		}
	}
	return name
}

// readLegacyItem decodes the pre-v38 "legacy name" item form: an lpstring
// display name, remapped through legacyNameTable, followed optionally by
// a stack. The catalog lookup by display name is performed only when the
// remapped name is empty — preserved verbatim even though this reads as
// inverted from what was likely intended.
func readLegacyItem(r *reader, cat Catalog, version int32, withStack bool) (Item, error) {
	name, err := r.readLPString()
	if err != nil {
		return Item{}, err
	}
	name = renameLegacy(name, version)

	var item Item
	if name == "" {
		if id, ok := cat.IDByDisplayName(name); ok {
			item.ID = id
		}
	}

	if withStack {
		stack, err := r.readI32()
		if err != nil {
			return Item{}, err
		}
		item.Stack = stack
	}

	if item.ID != 0 && item.Stack == 0 {
		item.Stack = 1
	}

	return item, nil
}

// writeLegacyItem mirrors readLegacyItem's observable behavior: the
// display name is resolved from the catalog by id and passed back through
// the reverse rename table.
func writeLegacyItem(w *writer, cat Catalog, version int32, withStack bool, item Item) error {
	name := ""
	if displayName, ok := cat.DisplayNameByID(item.ID); ok {
		name = displayName
	}
	name = reverseRenameLegacy(name, version)
	if err := w.writeLPString(name); err != nil {
		return err
	}

	if withStack {
		if err := w.writeI32(item.Stack); err != nil {
			return err
		}
	}

	return nil
}
