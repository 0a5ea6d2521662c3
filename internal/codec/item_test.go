package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is a minimal in-memory codec.Catalog for tests that don't
// need the real internal/catalog package.
type fakeCatalog struct {
	idByInternalName map[string]int32
	internalNameByID  map[int32]string
	idByDisplayName   map[string]int32
	displayNameByID    map[int32]string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		idByInternalName: map[string]int32{},
		internalNameByID:  map[int32]string{},
		idByDisplayName:   map[string]int32{},
		displayNameByID:    map[int32]string{},
	}
}

func (c *fakeCatalog) add(id int32, internalName, displayName string) {
	c.idByInternalName[internalName] = id
	c.internalNameByID[id] = internalName
	c.idByDisplayName[displayName] = id
	c.displayNameByID[id] = displayName
}

func (c *fakeCatalog) IDByInternalName(name string) (int32, bool) { v, ok := c.idByInternalName[name]; return v, ok }
func (c *fakeCatalog) InternalNameByID(id int32) (string, bool)   { v, ok := c.internalNameByID[id]; return v, ok }
func (c *fakeCatalog) IDByDisplayName(name string) (int32, bool)  { v, ok := c.idByDisplayName[name]; return v, ok }
func (c *fakeCatalog) DisplayNameByID(id int32) (string, bool)    { v, ok := c.displayNameByID[id]; return v, ok }

func TestItemFlagsRejectBothOrNeither(t *testing.T) {
	assert.ErrorIs(t, (itemFlags{ID: true, InternalName: true}).validate(), ErrOnlyIDOrInternalName)
	assert.ErrorIs(t, (itemFlags{}).validate(), ErrOnlyIDOrInternalName)
	assert.NoError(t, (itemFlags{ID: true}).validate())
	assert.NoError(t, (itemFlags{InternalName: true}).validate())
}

func TestItemRoundTripByID(t *testing.T) {
	cat := newFakeCatalog()
	flags := itemFlags{ID: true, Stack: true, Prefix: true, Favourited: true}
	item := Item{ID: 42, Stack: 5, Prefix: 3, Favourited: true}

	var buf bytes.Buffer
	require.NoError(t, writeItem(newWriter(&buf), cat, flags, item))

	got, err := readItem(newReader(&buf), cat, flags)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestItemStackNormalizesToOne(t *testing.T) {
	cat := newFakeCatalog()
	flags := itemFlags{ID: true, Stack: true}

	var buf bytes.Buffer
	w := newWriter(&buf)
	require.NoError(t, w.writeI32(99)) // id
	require.NoError(t, w.writeI32(0))  // stack

	got, err := readItem(newReader(&buf), cat, flags)
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.Stack)
}

func TestItemZeroIDKeepsZeroStack(t *testing.T) {
	cat := newFakeCatalog()
	flags := itemFlags{ID: true, Stack: true}

	var buf bytes.Buffer
	w := newWriter(&buf)
	require.NoError(t, w.writeI32(0))
	require.NoError(t, w.writeI32(0))

	got, err := readItem(newReader(&buf), cat, flags)
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.Stack)
}

func TestLegacyItemLooksUpOnlyWhenNameEmpty(t *testing.T) {
	cat := newFakeCatalog()
	cat.add(7, "IronPickaxe", "Iron Pickaxe")

	// A non-empty decoded name never triggers a catalog lookup, even when
	// it matches a real display name: preserved verbatim.
	var buf bytes.Buffer
	require.NoError(t, newWriter(&buf).writeLPString("Iron Pickaxe"))
	got, err := readLegacyItem(newReader(&buf), cat, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.ID)

	// An empty decoded name does trigger the lookup (by the empty string,
	// which this fake catalog doesn't index, so the id stays 0 too - the
	// point is only that the lookup path executes without touching the
	// non-empty case above).
	buf.Reset()
	require.NoError(t, newWriter(&buf).writeLPString(""))
	got, err = readLegacyItem(newReader(&buf), cat, 10, false)
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.ID)
}

func TestLegacyRenameTableAppliesUnderVersionCeiling(t *testing.T) {
	assert.Equal(t, "Jungle Hat", renameLegacy("Cobalt Helmet", 4))
	assert.Equal(t, "Cobalt Helmet", renameLegacy("Cobalt Helmet", 5))
	assert.Equal(t, "Cobalt Helmet", reverseRenameLegacy("Jungle Hat", 4))
}
