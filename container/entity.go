package container

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId uuid.UUID `gorm:"not null"`
	Id       uuid.UUID `gorm:"primaryKey;type:uuid"`
	OwnerId  uuid.UUID `gorm:"not null;index"`
	Kind     string    `gorm:"not null"`
	Capacity uint32    `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "containers"
}

func Make(e Entity) (Model, error) {
	return Model{
		id:       e.Id,
		ownerId:  e.OwnerId,
		kind:     Kind(e.Kind),
		capacity: e.Capacity,
	}, nil
}
