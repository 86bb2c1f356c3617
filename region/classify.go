package region

import (
	"atlas-sorter/container"
	"atlas-sorter/menu"
	"atlas-sorter/slot"

	"github.com/google/uuid"
)

// Classify selects the menu slots belonging to region r, preserving menu order.
//
// A foreign container only counts when every one of its slots is generically sortable, so furnaces,
// brewing stands and similar are never rearranged. Crafting grids are excluded outright.
func Classify(playerId uuid.UUID, slots []menu.Slot, r Region, sortable slot.SortablePredicate) []menu.Slot {
	result := make([]menu.Slot, 0)
	switch r {
	case Container:
		special := make(map[uuid.UUID]struct{})
		for _, s := range slots {
			if !s.IsPlayerInventory() && !sortable(s.Slot()) {
				special[s.ContainerId()] = struct{}{}
			}
		}
		for _, s := range slots {
			if s.IsPlayerInventory() || !sortable(s.Slot()) || s.ContainerKind() == container.KindCrafting {
				continue
			}
			if _, ok := special[s.ContainerId()]; ok {
				continue
			}
			result = append(result, s)
		}
	case PlayerMain, PlayerHotbar:
		lo, hi, _ := r.Bounds()
		for _, s := range slots {
			if s.InventoryOf(playerId) && s.Index() >= lo && s.Index() <= hi {
				result = append(result, s)
			}
		}
	}
	return result
}
