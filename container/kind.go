package container

import (
	"atlas-sorter/slot"
	"errors"
	"strings"
)

type Kind string

const (
	KindPlayer   Kind = "player"
	KindChest    Kind = "chest"
	KindHopper   Kind = "hopper"
	KindCrafting Kind = "crafting"
	KindFurnace  Kind = "furnace"
	KindBrewing  Kind = "brewing"
)

var Kinds = []Kind{KindPlayer, KindChest, KindHopper, KindCrafting, KindFurnace, KindBrewing}

var ErrUnknownKind = errors.New("unknown container kind")

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

const (
	PlayerInventorySize = 36
	PlayerArmorStart    = 36
	PlayerArmorSize     = 4
	PlayerOffhandSlot   = 40
	PlayerCapacity      = 41
	DefaultChestSize    = 27
	HopperSize          = 5
)

// Layout returns the slot kinds of a container of the given kind, indexed by slot.
// Capacity only applies to kinds whose size is not fixed.
func Layout(kind Kind, capacity uint32) ([]slot.Kind, error) {
	switch kind {
	case KindPlayer:
		ks := repeat(slot.KindGeneric, PlayerInventorySize)
		ks = append(ks, repeat(slot.KindArmor, PlayerArmorSize)...)
		return append(ks, slot.KindOffhand), nil
	case KindChest:
		if capacity == 0 {
			capacity = DefaultChestSize
		}
		return repeat(slot.KindGeneric, int(capacity)), nil
	case KindHopper:
		return repeat(slot.KindGeneric, HopperSize), nil
	case KindCrafting:
		return append([]slot.Kind{slot.KindResult}, repeat(slot.KindCrafting, 9)...), nil
	case KindFurnace:
		return []slot.Kind{slot.KindIngredient, slot.KindFuel, slot.KindResult}, nil
	case KindBrewing:
		return []slot.Kind{slot.KindHandler, slot.KindHandler, slot.KindHandler, slot.KindIngredient, slot.KindFuel}, nil
	}
	return nil, ErrUnknownKind
}

func repeat(k slot.Kind, n int) []slot.Kind {
	ks := make([]slot.Kind, n)
	for i := range ks {
		ks[i] = k
	}
	return ks
}
