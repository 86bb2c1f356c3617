package slot

import (
	"atlas-sorter/stack"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId    uuid.UUID `gorm:"not null"`
	Id          uint32    `gorm:"primaryKey;autoIncrement;not null"`
	ContainerId uuid.UUID `gorm:"not null;uniqueIndex:idx_container_slot"`
	Slot        int16     `gorm:"not null;uniqueIndex:idx_container_slot"`
	Kind        string    `gorm:"not null"`
	ItemId      string    `gorm:"not null"`
	Quantity    uint32    `gorm:"not null"`
	Components  string    `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "slots"
}

func Make(e Entity) (Model, error) {
	s := stack.NewBuilder(e.ItemId).
		SetQuantity(e.Quantity).
		SetComponents(e.Components).
		Build()
	return Model{
		id:          e.Id,
		containerId: e.ContainerId,
		index:       e.Slot,
		kind:        Kind(e.Kind),
		stack:       s,
	}, nil
}
