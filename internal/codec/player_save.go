package codec

import "bytes"

// Save encodes p as a complete plaintext player body (framed header
// followed by the version-gated field schedule), reproducing the exact
// byte sequence a load of the same version would consume.
func Save(p *Player, cat Catalog) ([]byte, error) {
	var buf bytes.Buffer
	w := newWriter(&buf)
	version := p.Header.Version

	if err := writeHeader(w, p.Header); err != nil {
		return nil, err
	}
	if err := p.saveIdentity(w, cat, version); err != nil {
		return nil, err
	}
	if err := p.saveVitals(w, version); err != nil {
		return nil, err
	}
	if err := p.saveColors(w); err != nil {
		return nil, err
	}
	if err := p.saveInventoryTier(w, cat, version); err != nil {
		return nil, err
	}
	if err := writeBuffs(w, version, p.Buffs); err != nil {
		return nil, err
	}
	if err := writeSpawnpoints(w, p.Spawnpoints); err != nil {
		return nil, err
	}
	if err := p.saveControls(w, cat, version); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (p *Player) activeLoadout(version int32) Loadout {
	if version >= 262 {
		return p.Loadouts[p.CurrentLoadoutIndex]
	}
	return p.Loadouts[0]
}

func (p *Player) saveIdentity(w *writer, cat Catalog, version int32) error {
	if version >= 17 {
		if err := w.writeU8(uint8(p.Difficulty)); err != nil {
			return err
		}
	} else if version >= 10 {
		if err := w.writeBool(p.Difficulty == DifficultyHardcore); err != nil {
			return err
		}
	}

	if version >= 138 {
		if err := w.writeI64(p.Playtime); err != nil {
			return err
		}
	}

	if err := w.writeI32(p.HairStyle); err != nil {
		return err
	}

	if version >= 82 {
		if err := w.writeU8(p.HairDye); err != nil {
			return err
		}
	}

	if version >= 283 {
		if err := w.writeU8(uint8(p.Team)); err != nil {
			return err
		}
	}

	if version >= 83 {
		if err := saveLoadoutVisuals(w, version, true, p.activeLoadout(version).Visibility); err != nil {
			return err
		}
	}

	if version >= 119 {
		var b BoolByte
		for i := 0; i < EquipmentCount; i++ {
			if err := b.Set(i, p.HideEquipment[i]); err != nil {
				return err
			}
		}
		if err := w.writeBoolByte(b); err != nil {
			return err
		}
	}

	switch {
	case version <= 17:
		// Nothing is written for gender at these versions, even when the
		// read path inferred Male/SkinVariant from HairStyle.
	case version <= 106:
		if err := w.writeBool(p.Male); err != nil {
			return err
		}
	default:
		if err := w.writeU8(p.SkinVariant); err != nil {
			return err
		}
	}

	return nil
}

func (p *Player) saveVitals(w *writer, version int32) error {
	if err := w.writeI32(p.Life); err != nil {
		return err
	}
	if err := w.writeI32(p.MaxLife); err != nil {
		return err
	}
	if err := w.writeI32(p.Mana); err != nil {
		return err
	}
	if err := w.writeI32(p.MaxMana); err != nil {
		return err
	}

	if version >= 125 {
		if err := w.writeBool(p.DemonHeart); err != nil {
			return err
		}
	}
	if version >= 229 {
		if err := w.writeBool(p.BiomeTorches); err != nil {
			return err
		}
		if err := w.writeBool(p.BiomeTorchesEnabled); err != nil {
			return err
		}
	}
	if version >= 256 {
		if err := w.writeBool(p.ArtisanLoaf); err != nil {
			return err
		}
	}
	if version >= 260 {
		for _, v := range []bool{p.VitalCrystal, p.AegisFruit, p.ArcaneCrystal, p.GalaxyPearl, p.GummyWorm, p.Ambrosia} {
			if err := w.writeBool(v); err != nil {
				return err
			}
		}
	}
	if version >= 182 {
		if err := w.writeBool(p.DefeatedOOA); err != nil {
			return err
		}
	}
	if version >= 128 {
		if err := w.writeI32(p.TaxMoney); err != nil {
			return err
		}
	}
	if version >= 257 {
		if err := w.writeI32(p.PveDeaths); err != nil {
			return err
		}
		if err := w.writeI32(p.PvpDeaths); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) saveColors(w *writer) error {
	for _, c := range []RGB{
		p.SkinColor, p.HairColor, p.EyeColor, p.ShirtColor,
		p.UndershirtColor, p.PantsColor, p.ShoeColor,
	} {
		if err := w.writeRGB(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) saveInventoryTier(w *writer, cat Catalog, version int32) error {
	if err := saveLoadout(w, cat, version, false, version >= 36, p.activeLoadout(version)); err != nil {
		return err
	}

	flags := inventoryItemFlags(version)
	readAmmo := version >= 15

	if version >= 58 {
		if err := writeFixedItems(w, cat, flags, p.Inventory); err != nil {
			return err
		}
		if err := writeFixedItems(w, cat, flags, p.Coins[:]); err != nil {
			return err
		}
		if err := writeFixedItems(w, cat, flags, p.Ammo[:]); err != nil {
			return err
		}
	} else {
		combined := make([]Item, 0, 48)
		combined = append(combined, p.Inventory...)
		combined = append(combined, p.Coins[:]...)
		if readAmmo {
			combined = append(combined, p.Ammo[:]...)
		}
		if err := writeFixedItems(w, cat, flags, combined); err != nil {
			return err
		}
	}

	if version >= 117 {
		start := 0
		if version < 136 {
			start = 1
		}
		for i := start; i <= 4; i++ {
			if err := writeItem(w, cat, equipmentItemFlags, p.Equipment[i]); err != nil {
				return err
			}
			if err := writeItem(w, cat, equipmentItemFlags, p.EquipmentDyes[i]); err != nil {
				return err
			}
		}
	}

	if err := writeFixedItems(w, cat, flags, p.PiggyBank); err != nil {
		return err
	}

	if version >= 20 {
		if err := writeFixedItems(w, cat, flags, p.Safe); err != nil {
			return err
		}
	}

	if version >= 182 {
		if err := writeFixedItems(w, cat, flags, p.DefendersForge); err != nil {
			return err
		}
	}

	if version >= 198 {
		vvFlags := voidVaultItemFlags(version)
		if err := writeFixedItems(w, cat, vvFlags, p.VoidVault); err != nil {
			return err
		}
	}
	if version >= 199 {
		var b BoolByte
		if err := b.Set(0, p.VoidVaultEnabled); err != nil {
			return err
		}
		if err := w.writeBoolByte(b); err != nil {
			return err
		}
	}

	return nil
}

func writeFixedItems(w *writer, cat Catalog, flags itemFlags, items []Item) error {
	for _, item := range items {
		if err := writeItem(w, cat, flags, item); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) saveControls(w *writer, cat Catalog, version int32) error {
	if version >= 16 {
		if err := w.writeBool(p.LockedHotbar); err != nil {
			return err
		}
	}

	if version >= 115 {
		for _, v := range p.HideCellphoneInfo {
			if err := w.writeBool(v); err != nil {
				return err
			}
		}
	}

	if version >= 98 {
		if err := w.writeI32(p.AnglerQuests); err != nil {
			return err
		}
	}

	if version >= 162 {
		for _, v := range p.DpadBindings {
			if err := w.writeI32(v); err != nil {
				return err
			}
		}
	}

	if version >= 164 {
		k := builderAccessoryCount(version)
		status := make([]int32, k)
		copy(status, p.BuilderAccessoryStatus)
		for _, v := range status {
			if err := w.writeI32(v); err != nil {
				return err
			}
		}
	}

	if version >= 181 {
		if err := w.writeI32(p.TavernkeepQuests); err != nil {
			return err
		}
	}

	if version >= 200 {
		if err := w.writeBool(p.Dead); err != nil {
			return err
		}
		if p.Dead {
			if err := w.writeI32(p.RespawnTimer); err != nil {
				return err
			}
		}
	}

	if version >= 202 {
		if err := w.writeI64(p.LastSave); err != nil {
			return err
		}
	}

	if version >= 206 {
		if err := w.writeI32(p.GolferScore); err != nil {
			return err
		}
	}

	if version >= 218 {
		if err := writeResearch(w, version, p.Research, p.researchFlag); err != nil {
			return err
		}
	}

	if version >= 214 {
		mask := p.temporarySlotsMask
		if err := w.writeBoolByte(mask); err != nil {
			return err
		}
		for i := 0; i < TemporarySlotCount; i++ {
			present, _ := mask.Get(i)
			if !present {
				continue
			}
			if err := writeItem(w, cat, noFavouriteStackedFlags, p.TemporarySlots[i]); err != nil {
				return err
			}
		}
	}

	if version >= 220 {
		if err := saveJourneyPowers(w, p.Difficulty, p.JourneyPowers); err != nil {
			return err
		}
	}

	if version >= 253 {
		var b BoolByte
		if err := b.Set(0, p.SuperCart); err != nil {
			return err
		}
		if err := b.Set(1, p.SuperCartEnabled); err != nil {
			return err
		}
		if err := w.writeBoolByte(b); err != nil {
			return err
		}
	}

	if version >= 262 {
		idx := p.CurrentLoadoutIndex
		if idx < 0 {
			idx = 0
		}
		if idx > 2 {
			idx = 2
		}
		if err := w.writeI32(idx); err != nil {
			return err
		}

		for i := 0; i < LoadoutCount; i++ {
			if int32(i) == idx {
				defaulted := NewLoadout(version)
				if err := saveLoadout(w, cat, version, true, true, defaulted); err != nil {
					return err
				}
				if err := saveLoadoutVisuals(w, version, false, defaulted.Visibility); err != nil {
					return err
				}
				continue
			}
			if err := saveLoadout(w, cat, version, true, true, p.Loadouts[i]); err != nil {
				return err
			}
			if err := saveLoadoutVisuals(w, version, false, p.Loadouts[i].Visibility); err != nil {
				return err
			}
		}
	}

	if version >= 280 {
		if err := w.writeU8(p.VoiceVariant); err != nil {
			return err
		}
	}

	if version >= 281 {
		if err := w.writeF32(p.VoicePitchOffset); err != nil {
			return err
		}
	}

	if version >= 300 {
		if err := w.writeI32(int32(len(p.PendingRefunds))); err != nil {
			return err
		}
		if err := writeFixedItems(w, cat, noFavouriteStackedFlags, p.PendingRefunds); err != nil {
			return err
		}
	}

	if version >= 310 {
		if err := w.writeI32(int32(len(p.OneTimeDialoguesSeen))); err != nil {
			return err
		}
		for _, s := range p.OneTimeDialoguesSeen {
			if err := w.writeLPString(s); err != nil {
				return err
			}
		}
	}

	return nil
}
