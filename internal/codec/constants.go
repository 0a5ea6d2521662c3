// Package codec implements the Terraria player save format: the AES
// envelope, the framed header, and the version-gated player body.
package codec

// CurrentVersion is the newest on-disk player revision this codec accepts.
// Files stamped with a higher version are rejected with ErrPostDated.
const CurrentVersion int32 = 279

// magicMask and magicNumber are taken directly from the game's own
// binary-format check: the low 56 bits of the post-v135 header's magic
// uint64 must equal the ASCII string "relogic" (little-endian), and the
// top byte carries the file-type discriminant (see FileType).
const (
	magicMask   uint64 = 0x00FF_FFFF_FFFF_FFFF
	magicNumber uint64 = 0x0063_6967_6F6C_6572 // "relogic" read as a little-endian uint64
)

// FileType is the discriminant packed into the top byte of the v135+ magic
// number. Only Player files are within scope; Map and World share the
// framing header but are explicitly out of scope for this codec.
type FileType uint8

const (
	FileTypeMap    FileType = 1
	FileTypeWorld  FileType = 2
	FileTypePlayer FileType = 3
)

// encryptionKey is both the AES-128 key and the CBC initialization vector.
// It is the ASCII string "h3y_gUyZ" with a zero byte interleaved after every
// character, a remnant of the key being embedded as a native UTF-16 string
// in the game's executable.
var encryptionKey = [16]byte{
	'h', 0, '3', 0, 'y', 0, '_', 0, 'g', 0, 'U', 0, 'y', 0, 'Z', 0,
}

// Container sizes: the largest slot count any supported version uses.
// Coins, ammo, equipment, armor, cellphone-info and d-pad containers are
// fixed arrays of this size; inventory, banks, buffs, accessories and
// builder-accessory status are slices whose length follows the version
// (see player.go).
const (
	ArmorCount         = 3
	AccessoryCount     = 7
	HiddenVisualCount  = ArmorCount + AccessoryCount
	InventoryCount     = 50
	CoinsCount         = 4
	AmmoCount          = 4
	EquipmentCount     = 5
	BankCount          = 40
	BuffCount          = 44
	SpawnpointLimit    = 200
	CellphoneInfoCount = 13
	DpadBindingsCount  = 4
	BuilderAccessoryCount = 12
	TemporarySlotCount = 4
	LoadoutCount       = 3

	MaxRespawnTime = 60_000
)

// femaleSkinVariants is matched against Player.HairStyle to infer a female
// character for version <= 17; maleSkinVariants derives Player.Male from
// Player.SkinVariant for version >= 107.
var (
	femaleSkinVariants = map[int32]bool{5: true, 6: true, 9: true, 11: true}
	maleSkinVariants   = map[int32]bool{0: true, 1: true, 2: true, 3: true, 8: true, 10: true}
)

// nanosecondsPerTick mirrors the host game's use of .NET-style ticks
// (100ns units) for Playtime and LastSave.
const nanosecondsPerTick = 100

// grandDesignItemID and mechanicalCartItemID are hard-coded item ids the
// body schedule consults directly for the builder-accessory and
// super-cart derivations.
const (
	grandDesignItemID   = 3611
	mechanicalCartItemID = 3353
)
