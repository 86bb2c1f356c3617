package slot

import (
	"atlas-sorter/stack"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, tenantId uuid.UUID, containerId uuid.UUID, index int16, kind Kind) (Model, error) {
	e := &Entity{
		TenantId:    tenantId,
		ContainerId: containerId,
		Slot:        index,
		Kind:        string(kind),
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return Make(*e)
}

func updateStack(db *gorm.DB, tenantId uuid.UUID, containerId uuid.UUID, index int16, s stack.Model) error {
	e := Entity{}
	if !s.Empty() {
		e.ItemId = s.ItemId()
		e.Quantity = s.Quantity()
		e.Components = s.Components()
	}
	res := db.Model(&Entity{}).
		Where("tenant_id = ? AND container_id = ? AND slot = ?", tenantId, containerId, index).
		Select("ItemId", "Quantity", "Components").
		Updates(&e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteByContainer(db *gorm.DB, tenantId uuid.UUID, containerId uuid.UUID) error {
	return db.Where(&Entity{TenantId: tenantId, ContainerId: containerId}).Delete(&Entity{}).Error
}
