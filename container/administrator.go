package container

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, tenantId uuid.UUID, ownerId uuid.UUID, kind Kind, capacity uint32) (Model, error) {
	e := &Entity{
		TenantId: tenantId,
		Id:       uuid.New(),
		OwnerId:  ownerId,
		Kind:     string(kind),
		Capacity: capacity,
	}

	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func deleteById(db *gorm.DB, tenantId uuid.UUID, id uuid.UUID) error {
	return db.Where(&Entity{TenantId: tenantId, Id: id}).Delete(&Entity{}).Error
}
