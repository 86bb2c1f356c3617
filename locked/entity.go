package locked

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId uuid.UUID `gorm:"not null;uniqueIndex:idx_locked_player_slot"`
	PlayerId uuid.UUID `gorm:"not null;uniqueIndex:idx_locked_player_slot"`
	Slot     int16     `gorm:"not null;uniqueIndex:idx_locked_player_slot"`
}

func (e Entity) TableName() string {
	return "locked_slots"
}

// Make folds a player's rows into a single set.
func Make(es []Entity) (Model, error) {
	slots := make([]int16, 0, len(es))
	for _, e := range es {
		slots = append(slots, e.Slot)
	}
	return FromSlots(slots...)
}
