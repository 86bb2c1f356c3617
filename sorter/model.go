package sorter

import (
	"atlas-sorter/menu"
	"atlas-sorter/region"
	"atlas-sorter/sorting"

	"github.com/google/uuid"
)

// Result describes one completed region sort.
type Result struct {
	playerId   uuid.UUID
	region     region.Region
	preference sorting.Preference
	slots      []menu.Slot
}

func (r Result) PlayerId() uuid.UUID {
	return r.playerId
}

func (r Result) Region() region.Region {
	return r.region
}

func (r Result) Preference() sorting.Preference {
	return r.preference
}

// Slots are the region's slots after sorting, in menu order.
func (r Result) Slots() []menu.Slot {
	return r.slots
}
