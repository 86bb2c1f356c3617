package menu

import (
	"atlas-sorter/container"
	"atlas-sorter/slot"

	"github.com/google/uuid"
)

// Slot is a container slot as seen through a player's open menu.
type Slot struct {
	containerId   uuid.UUID
	containerKind container.Kind
	ownerId       uuid.UUID
	slot          slot.Model
}

func (s Slot) ContainerId() uuid.UUID {
	return s.containerId
}

func (s Slot) ContainerKind() container.Kind {
	return s.containerKind
}

func (s Slot) OwnerId() uuid.UUID {
	return s.ownerId
}

func (s Slot) Slot() slot.Model {
	return s.slot
}

func (s Slot) Index() int16 {
	return s.slot.Index()
}

func (s Slot) IsPlayerInventory() bool {
	return s.containerKind == container.KindPlayer
}

// InventoryOf reports whether the slot lives in the given player's own inventory.
func (s Slot) InventoryOf(playerId uuid.UUID) bool {
	return s.IsPlayerInventory() && s.ownerId == playerId
}

// WithSlot returns a copy of s showing m in place of the current slot.
func (s Slot) WithSlot(m slot.Model) Slot {
	s.slot = m
	return s
}

func NewSlot(c container.Model, s slot.Model) Slot {
	return Slot{
		containerId:   c.Id(),
		containerKind: c.Kind(),
		ownerId:       c.OwnerId(),
		slot:          s,
	}
}

const HotbarSize = 9

type Model struct {
	playerId uuid.UUID
	foreign  bool
	slots    []Slot
}

func (m Model) PlayerId() uuid.UUID {
	return m.playerId
}

// HasForeignContainer reports whether the menu shows a container other than the player's inventory.
func (m Model) HasForeignContainer() bool {
	return m.foreign
}

func (m Model) Slots() []Slot {
	return m.slots
}

// Build lays a menu out the way the client does: the open container's slots first, then the
// player's main inventory, then the hotbar. Armor and offhand slots are not part of the menu.
func Build(playerId uuid.UUID, inventory container.Model, open ...container.Model) Model {
	m := Model{playerId: playerId, slots: make([]Slot, 0)}
	for _, c := range open {
		if c.Id() == inventory.Id() {
			continue
		}
		m.foreign = true
		for _, s := range c.Slots() {
			m.slots = append(m.slots, NewSlot(c, s))
		}
	}
	var hotbar []Slot
	for _, s := range inventory.Slots() {
		switch {
		case s.Index() >= 0 && s.Index() < HotbarSize:
			hotbar = append(hotbar, NewSlot(inventory, s))
		case s.Index() >= HotbarSize && s.Index() < container.PlayerInventorySize:
			m.slots = append(m.slots, NewSlot(inventory, s))
		}
	}
	m.slots = append(m.slots, hotbar...)
	return m
}
