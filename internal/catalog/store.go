package catalog

// Store is an in-memory map-indexed catalog: the default implementation
// for callers who don't want a SQLite dependency at runtime. It satisfies
// codec.Catalog structurally (id/internal-name/display-name lookups)
// without importing the codec package.
type Store struct {
	items   []ItemMeta
	buffs   []BuffMeta
	prefixes []PrefixMeta

	itemByID           map[int32]ItemMeta
	itemByInternalName map[string]ItemMeta
	itemByDisplayName  map[string]ItemMeta
}

// NewStore builds a Store from catalog records, precomputing the three
// hash indices the codec needs for id/internal-name/display-name lookup.
func NewStore(items []ItemMeta, buffs []BuffMeta, prefixes []PrefixMeta) *Store {
	s := &Store{
		items:    items,
		buffs:    buffs,
		prefixes: prefixes,

		itemByID:           make(map[int32]ItemMeta, len(items)),
		itemByInternalName: make(map[string]ItemMeta, len(items)),
		itemByDisplayName:  make(map[string]ItemMeta, len(items)),
	}
	for _, item := range items {
		s.itemByID[item.ID] = item
		s.itemByInternalName[item.InternalName] = item
		s.itemByDisplayName[item.Name] = item
	}
	return s
}

func (s *Store) IDByInternalName(name string) (int32, bool) {
	item, ok := s.itemByInternalName[name]
	return item.ID, ok
}

func (s *Store) InternalNameByID(id int32) (string, bool) {
	item, ok := s.itemByID[id]
	return item.InternalName, ok
}

func (s *Store) IDByDisplayName(name string) (int32, bool) {
	item, ok := s.itemByDisplayName[name]
	return item.ID, ok
}

func (s *Store) DisplayNameByID(id int32) (string, bool) {
	item, ok := s.itemByID[id]
	return item.Name, ok
}

// ItemMeta returns the full catalog record for id, for callers (the CLI,
// the out-of-scope GUI) that want more than the codec's narrow lookups.
func (s *Store) ItemMeta(id int32) (ItemMeta, bool) {
	item, ok := s.itemByID[id]
	return item, ok
}

// BuffMeta returns the full catalog record for a buff id by linear scan;
// buff catalogs are small (a few hundred entries) so an index isn't worth
// the bookkeeping.
func (s *Store) BuffMeta(id int32) (BuffMeta, bool) {
	for _, b := range s.buffs {
		if b.ID == id {
			return b, true
		}
	}
	return BuffMeta{}, false
}

// PrefixMeta returns the full catalog record for a prefix id.
func (s *Store) PrefixMeta(id uint8) (PrefixMeta, bool) {
	for _, p := range s.prefixes {
		if p.ID == id {
			return p, true
		}
	}
	return PrefixMeta{}, false
}
