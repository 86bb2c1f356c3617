package locked

import (
	"atlas-sorter/database"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getByPlayerId(tenantId uuid.UUID, playerId uuid.UUID) database.EntityProvider[[]Entity] {
	return func(db *gorm.DB) model.Provider[[]Entity] {
		return database.OrderedSliceQuery[Entity](db, &Entity{TenantId: tenantId, PlayerId: playerId}, "slot asc")
	}
}
