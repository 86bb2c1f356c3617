package slot

import (
	"atlas-sorter/database"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getByContainerId(tenantId uuid.UUID, containerId uuid.UUID) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.OrderedSliceQuery[Entity](db, &Entity{TenantId: tenantId, ContainerId: containerId}, "slot asc")
	}
}

func getBySlot(tenantId uuid.UUID, containerId uuid.UUID, index int16) database.EntityProvider[Entity] {
	return func(db *gorm.DB) model.Provider[Entity] {
		return database.Query[Entity](db, map[string]interface{}{"tenant_id": tenantId, "container_id": containerId, "slot": index})
	}
}
