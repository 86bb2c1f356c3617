package snapshot

import (
	"atlas-sorter/locked"
	"atlas-sorter/region"
	"atlas-sorter/sorting"

	"github.com/google/uuid"
)

// Model is everything a client needs to render a player's sort controls.
type Model struct {
	playerId   uuid.UUID
	preference sorting.Preference
	locked     locked.Model
}

func (m Model) PlayerId() uuid.UUID {
	return m.playerId
}

func (m Model) Preference() sorting.Preference {
	return m.preference
}

func (m Model) Locked() locked.Model {
	return m.locked
}

func (m Model) LockedMain() int {
	return m.locked.CountInRange(region.MainStart, region.MainEnd)
}

func (m Model) LockedHotbar() int {
	return m.locked.CountInRange(region.HotbarStart, region.HotbarEnd)
}

func NewModel(playerId uuid.UUID, p sorting.Preference, l locked.Model) Model {
	return Model{playerId: playerId, preference: p, locked: l}
}
