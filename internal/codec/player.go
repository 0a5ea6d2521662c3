package codec

import (
	"bytes"
	"time"
)

// Player is the in-memory aggregate root the codec loads into and saves
// from. Nothing here is owned across calls — a caller holds exactly one
// Player at a time.
type Player struct {
	Header

	Difficulty Difficulty
	Playtime   int64

	HairStyle       int32
	HairDye         uint8
	Team            Team
	Male            bool
	SkinVariant     uint8
	VoiceVariant    uint8
	VoicePitchOffset float32

	SkinColor       RGB
	HairColor       RGB
	EyeColor        RGB
	ShirtColor      RGB
	UndershirtColor RGB
	PantsColor      RGB
	ShoeColor       RGB

	HideEquipment [EquipmentCount]bool

	Life, MaxLife int32
	Mana, MaxMana int32

	DemonHeart          bool
	BiomeTorches        bool
	BiomeTorchesEnabled bool
	ArtisanLoaf         bool
	VitalCrystal        bool
	AegisFruit          bool
	ArcaneCrystal       bool
	GalaxyPearl         bool
	GummyWorm           bool
	Ambrosia            bool
	DefeatedOOA         bool

	TaxMoney  int32
	PveDeaths int32
	PvpDeaths int32

	Inventory      []Item
	Coins          [CoinsCount]Item
	Ammo           [AmmoCount]Item
	Equipment      [EquipmentCount]Item
	EquipmentDyes  [EquipmentCount]Item
	PiggyBank      []Item
	Safe           []Item
	DefendersForge []Item
	VoidVault      []Item
	VoidVaultEnabled bool

	Buffs       []Buff
	Spawnpoints []Spawnpoint

	LockedHotbar        bool
	HideCellphoneInfo   [CellphoneInfoCount]bool
	AnglerQuests        int32
	DpadBindings        [DpadBindingsCount]int32
	BuilderAccessoryStatus []int32
	TavernkeepQuests    int32
	Dead                bool
	RespawnTimer        int32
	LastSave            int64
	GolferScore         int32

	Research     []ResearchItem
	researchFlag bool

	TemporarySlots     []Item
	temporarySlotsMask BoolByte

	JourneyPowers JourneyPowers

	SuperCart        bool
	SuperCartEnabled bool

	Loadouts            [LoadoutCount]Loadout
	CurrentLoadoutIndex int32

	PendingRefunds       []Item
	OneTimeDialoguesSeen []string
}

// NewPlayer returns a Player with ship-default colors, 100/20 vitals, and
// empty collections.
func NewPlayer() *Player {
	p := &Player{
		Difficulty: DifficultyClassic,
		Male:       true,
		Life:       100, MaxLife: 100,
		Mana: 20, MaxMana: 20,
		SkinColor:       RGB{255, 125, 90},
		HairColor:       RGB{215, 90, 55},
		EyeColor:        RGB{105, 90, 75},
		ShirtColor:      RGB{160, 180, 215},
		UndershirtColor: RGB{130, 120, 165},
		PantsColor:      RGB{255, 230, 175},
		ShoeColor:       RGB{160, 105, 60},
		DpadBindings:    [DpadBindingsCount]int32{-1, -1, -1, -1},
	}
	for i := range p.Loadouts {
		p.Loadouts[i] = NewLoadout(CurrentVersion)
	}
	return p
}

func inventorySize(version int32) int {
	if version >= 58 {
		return 50
	}
	return 40
}

func bankSize(version int32) int {
	if version >= 58 {
		return 40
	}
	return 20
}

func inventoryItemFlags(version int32) itemFlags {
	return itemFlags{ID: true, Stack: true, Prefix: version >= 36, Favourited: version >= 114}
}

func voidVaultItemFlags(version int32) itemFlags {
	return itemFlags{ID: true, Stack: true, Prefix: true, Favourited: version >= 255}
}

var equipmentItemFlags = itemFlags{ID: true, Prefix: true}
var noFavouriteStackedFlags = itemFlags{ID: true, Stack: true, Prefix: true}

func builderAccessoryCount(version int32) int {
	switch {
	case version >= 230:
		return 12
	case version >= 197:
		return 11
	case version >= 167:
		return 10
	default:
		return 8
	}
}

// HasItem reports whether id appears anywhere across inventory, coins,
// ammo, every loadout's armor and accessories (vanity and dye slots are
// not searched), equipment, equipment dyes, piggy bank,
// safe, defenders forge, or void vault. Used internally to derive
// builder-accessory and super-cart flags on pre-item-pack saves.
func (p *Player) HasItem(id int32) bool {
	containers := [][]Item{
		p.Inventory, p.Coins[:], p.Ammo[:],
		p.Equipment[:], p.EquipmentDyes[:],
		p.PiggyBank, p.Safe, p.DefendersForge, p.VoidVault,
	}
	for _, c := range containers {
		for _, item := range c {
			if item.ID == id {
				return true
			}
		}
	}
	for _, lo := range p.Loadouts {
		for _, item := range lo.Armor {
			if item.ID == id {
				return true
			}
		}
		for _, item := range lo.Accessories {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}

// currentTicks returns the current UTC time as .NET-style 100ns ticks
// since the epoch, used when a pre-202 file has no stored LastSave.
func currentTicks() int64 {
	return time.Now().UTC().UnixNano() / nanosecondsPerTick
}

// Load decodes a complete plaintext player body (the L3 header followed by
// the L4 field schedule) from plaintext, using cat to resolve items encoded
// by name.
func Load(plaintext []byte, cat Catalog) (*Player, error) {
	r := newReader(bytes.NewReader(plaintext))

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	p := &Player{Header: header}
	version := header.Version

	if err := p.loadIdentity(r, cat, version); err != nil {
		return nil, err
	}
	if err := p.loadVitals(r, version); err != nil {
		return nil, err
	}
	if err := p.loadColors(r); err != nil {
		return nil, err
	}
	if err := p.loadInventoryTier(r, cat, version); err != nil {
		return nil, err
	}

	buffs, err := readBuffs(r, version)
	if err != nil {
		return nil, err
	}
	p.Buffs = buffs

	spawnpoints, err := readSpawnpoints(r)
	if err != nil {
		return nil, err
	}
	p.Spawnpoints = spawnpoints

	if err := p.loadControls(r, cat, version); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Player) loadIdentity(r *reader, cat Catalog, version int32) error {
	if version >= 17 {
		b, err := r.readU8()
		if err != nil {
			return err
		}
		p.Difficulty = difficultyFromByte(b)
	} else if version >= 10 {
		hardcore, err := r.readBool()
		if err != nil {
			return err
		}
		if hardcore {
			p.Difficulty = DifficultyHardcore
		} else {
			p.Difficulty = DifficultyClassic
		}
	}

	if version >= 138 {
		playtime, err := r.readI64()
		if err != nil {
			return err
		}
		p.Playtime = playtime
	}

	hairStyle, err := r.readI32()
	if err != nil {
		return err
	}
	p.HairStyle = hairStyle

	if version >= 82 {
		hairDye, err := r.readU8()
		if err != nil {
			return err
		}
		p.HairDye = hairDye
	}

	if version >= 283 {
		teamByte, err := r.readU8()
		if err != nil {
			return err
		}
		p.Team = teamFromByte(teamByte)
	}

	if version >= 83 {
		vis, err := loadLoadoutVisuals(r, version, true)
		if err != nil {
			return err
		}
		p.Loadouts[0].Visibility = vis
	}

	if version >= 119 {
		b, err := r.readBoolByte()
		if err != nil {
			return err
		}
		for i := 0; i < EquipmentCount; i++ {
			v, _ := b.Get(i)
			p.HideEquipment[i] = v
		}
	}

	return p.loadGenderSkin(r, version)
}

func (p *Player) loadGenderSkin(r *reader, version int32) error {
	switch {
	case version <= 17:
		if femaleSkinVariants[p.HairStyle] {
			p.Male = false
			p.SkinVariant = 4
		} else {
			p.Male = true
		}
	case version <= 106:
		male, err := r.readBool()
		if err != nil {
			return err
		}
		p.Male = male
		if male {
			p.SkinVariant = 4
		}
	default:
		variant, err := r.readU8()
		if err != nil {
			return err
		}
		p.SkinVariant = variant
		p.Male = maleSkinVariants[int32(variant)]
	}

	if version <= 160 && p.SkinVariant == 7 {
		p.SkinVariant = 9
	}

	return nil
}

func (p *Player) loadVitals(r *reader, version int32) error {
	var err error
	if p.Life, err = r.readI32(); err != nil {
		return err
	}
	if p.MaxLife, err = r.readI32(); err != nil {
		return err
	}
	if p.Mana, err = r.readI32(); err != nil {
		return err
	}
	if p.MaxMana, err = r.readI32(); err != nil {
		return err
	}

	if version >= 125 {
		if p.DemonHeart, err = r.readBool(); err != nil {
			return err
		}
	}
	if version >= 229 {
		if p.BiomeTorches, err = r.readBool(); err != nil {
			return err
		}
		if p.BiomeTorchesEnabled, err = r.readBool(); err != nil {
			return err
		}
	}
	if version >= 256 {
		if p.ArtisanLoaf, err = r.readBool(); err != nil {
			return err
		}
	}
	if version >= 260 {
		for _, f := range []*bool{&p.VitalCrystal, &p.AegisFruit, &p.ArcaneCrystal, &p.GalaxyPearl, &p.GummyWorm, &p.Ambrosia} {
			v, err := r.readBool()
			if err != nil {
				return err
			}
			*f = v
		}
	}
	if version >= 182 {
		if p.DefeatedOOA, err = r.readBool(); err != nil {
			return err
		}
	}
	if version >= 128 {
		if p.TaxMoney, err = r.readI32(); err != nil {
			return err
		}
	}
	if version >= 256 {
		if p.PveDeaths, err = r.readI32(); err != nil {
			return err
		}
		if p.PvpDeaths, err = r.readI32(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) loadColors(r *reader) error {
	for _, c := range []*RGB{
		&p.SkinColor, &p.HairColor, &p.EyeColor, &p.ShirtColor,
		&p.UndershirtColor, &p.PantsColor, &p.ShoeColor,
	} {
		v, err := r.readRGB()
		if err != nil {
			return err
		}
		*c = v
	}
	return nil
}

func (p *Player) loadInventoryTier(r *reader, cat Catalog, version int32) error {
	lo0Visibility := p.Loadouts[0].Visibility
	lo0, err := loadLoadout(r, cat, version, false, version >= 36)
	if err != nil {
		return err
	}
	lo0.Visibility = lo0Visibility
	p.Loadouts[0] = lo0

	n := inventorySize(version)
	readAmmo := version >= 15
	wireSlots := n
	if version < 58 {
		if readAmmo {
			wireSlots = 48
		} else {
			wireSlots = 44
		}
	}

	slots := make([]Item, wireSlots)
	flags := inventoryItemFlags(version)
	for i := range slots {
		item, err := readItem(r, cat, flags)
		if err != nil {
			return err
		}
		slots[i] = item
	}

	if version >= 58 {
		p.Inventory = slots
		coins, err := readFixedItems(r, cat, flags, CoinsCount)
		if err != nil {
			return err
		}
		copy(p.Coins[:], coins)
		ammo, err := readFixedItems(r, cat, flags, AmmoCount)
		if err != nil {
			return err
		}
		copy(p.Ammo[:], ammo)
	} else {
		p.Inventory = slots[:40]
		copy(p.Coins[:], slots[40:44])
		if readAmmo {
			copy(p.Ammo[:], slots[44:48])
		}
	}

	if version >= 117 {
		start := 0
		if version < 136 {
			start = 1
		}
		for i := start; i <= 4; i++ {
			eq, err := readItem(r, cat, equipmentItemFlags)
			if err != nil {
				return err
			}
			p.Equipment[i] = eq
			dye, err := readItem(r, cat, equipmentItemFlags)
			if err != nil {
				return err
			}
			p.EquipmentDyes[i] = dye
		}
	}

	m := bankSize(version)
	piggyBank, err := readFixedItems(r, cat, flags, m)
	if err != nil {
		return err
	}
	p.PiggyBank = piggyBank

	if version >= 20 {
		safe, err := readFixedItems(r, cat, flags, m)
		if err != nil {
			return err
		}
		p.Safe = safe
	}

	if version >= 182 {
		forge, err := readFixedItems(r, cat, flags, m)
		if err != nil {
			return err
		}
		p.DefendersForge = forge
	}

	if version >= 198 {
		vvFlags := voidVaultItemFlags(version)
		vault, err := readFixedItems(r, cat, vvFlags, m)
		if err != nil {
			return err
		}
		p.VoidVault = vault
	}
	if version >= 199 {
		b, err := r.readBoolByte()
		if err != nil {
			return err
		}
		v, _ := b.Get(0)
		p.VoidVaultEnabled = v
	}

	return nil
}

func readFixedItems(r *reader, cat Catalog, flags itemFlags, n int) ([]Item, error) {
	items := make([]Item, n)
	for i := 0; i < n; i++ {
		item, err := readItem(r, cat, flags)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func (p *Player) loadControls(r *reader, cat Catalog, version int32) error {
	var err error

	if version >= 16 {
		if p.LockedHotbar, err = r.readBool(); err != nil {
			return err
		}
	}

	if version >= 115 {
		for i := range p.HideCellphoneInfo {
			v, err := r.readBool()
			if err != nil {
				return err
			}
			p.HideCellphoneInfo[i] = v
		}
	}

	if version >= 98 {
		if p.AnglerQuests, err = r.readI32(); err != nil {
			return err
		}
	}

	if version >= 162 {
		for i := range p.DpadBindings {
			v, err := r.readI32()
			if err != nil {
				return err
			}
			p.DpadBindings[i] = v
		}
	}

	if version >= 164 {
		k := builderAccessoryCount(version)
		status := make([]int32, k)
		for i := range status {
			v, err := r.readI32()
			if err != nil {
				return err
			}
			status[i] = v
		}
		if version <= 209 && len(status) > 0 {
			status[0] = 1
		}
		if version <= 248 && len(status) > 1 && p.HasItem(grandDesignItemID) {
			status[1] = 1
		}
		p.BuilderAccessoryStatus = status
	}

	if version >= 181 {
		if p.TavernkeepQuests, err = r.readI32(); err != nil {
			return err
		}
	}

	if version >= 200 {
		if p.Dead, err = r.readBool(); err != nil {
			return err
		}
		if p.Dead {
			timer, err := r.readI32()
			if err != nil {
				return err
			}
			if timer < 0 {
				timer = 0
			}
			if timer > MaxRespawnTime {
				timer = MaxRespawnTime
			}
			p.RespawnTimer = timer
		}
	}

	if version >= 202 {
		if p.LastSave, err = r.readI64(); err != nil {
			return err
		}
	} else {
		p.LastSave = currentTicks()
	}

	if version >= 206 {
		if p.GolferScore, err = r.readI32(); err != nil {
			return err
		}
	}

	if version >= 218 {
		research, flag, err := readResearch(r, version)
		if err != nil {
			return err
		}
		p.Research = research
		p.researchFlag = flag
	}

	if version >= 214 {
		mask, err := r.readBoolByte()
		if err != nil {
			return err
		}
		slots := make([]Item, TemporarySlotCount)
		for i := 0; i < TemporarySlotCount; i++ {
			present, _ := mask.Get(i)
			if !present {
				continue
			}
			item, err := readItem(r, cat, noFavouriteStackedFlags)
			if err != nil {
				return err
			}
			slots[i] = item
		}
		p.TemporarySlots = slots
		p.temporarySlotsMask = mask
	}

	if version >= 220 {
		jp, err := loadJourneyPowers(r)
		if err != nil {
			return err
		}
		p.JourneyPowers = jp
	}

	if version >= 253 {
		b, err := r.readBoolByte()
		if err != nil {
			return err
		}
		p.SuperCart, _ = b.Get(0)
		p.SuperCartEnabled, _ = b.Get(1)
	} else {
		p.SuperCart = p.HasItem(mechanicalCartItemID)
	}

	if version >= 262 {
		idx, err := r.readI32()
		if err != nil {
			return err
		}
		if idx < 0 {
			idx = 0
		}
		if idx > 2 {
			idx = 2
		}
		p.CurrentLoadoutIndex = idx

		if idx > 0 {
			p.Loadouts[idx] = p.Loadouts[0]
			p.Loadouts[0] = NewLoadout(version)
		}

		for i := 0; i < LoadoutCount; i++ {
			if int32(i) == idx {
				if err := skipLoadout(r, version); err != nil {
					return err
				}
				continue
			}
			lo, err := loadLoadout(r, cat, version, true, true)
			if err != nil {
				return err
			}
			vis, err := loadLoadoutVisuals(r, version, false)
			if err != nil {
				return err
			}
			lo.Visibility = vis
			p.Loadouts[i] = lo
		}
	}

	if version >= 280 {
		vv, err := r.readU8()
		if err != nil {
			return err
		}
		p.VoiceVariant = vv
	} else if p.Male {
		p.VoiceVariant = 1
	} else {
		p.VoiceVariant = 2
	}

	if version >= 281 {
		if p.VoicePitchOffset, err = r.readF32(); err != nil {
			return err
		}
	}

	if version >= 300 {
		count, err := r.readI32()
		if err != nil {
			return err
		}
		refunds, err := readFixedItems(r, cat, noFavouriteStackedFlags, int(count))
		if err != nil {
			return err
		}
		p.PendingRefunds = refunds
	}

	if version >= 310 {
		count, err := r.readI32()
		if err != nil {
			return err
		}
		dialogues := make([]string, count)
		for i := range dialogues {
			s, err := r.readLPString()
			if err != nil {
				return err
			}
			dialogues[i] = s
		}
		p.OneTimeDialoguesSeen = dialogues
	}

	return nil
}
