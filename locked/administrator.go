package locked

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func lock(db *gorm.DB, tenantId uuid.UUID, playerId uuid.UUID, slot int16) error {
	return db.Create(&Entity{TenantId: tenantId, PlayerId: playerId, Slot: slot}).Error
}

func unlock(db *gorm.DB, tenantId uuid.UUID, playerId uuid.UUID, slot int16) error {
	return db.Where(map[string]interface{}{"tenant_id": tenantId, "player_id": playerId, "slot": slot}).Delete(&Entity{}).Error
}

func unlockAll(db *gorm.DB, tenantId uuid.UUID, playerId uuid.UUID) error {
	return db.Where(&Entity{TenantId: tenantId, PlayerId: playerId}).Delete(&Entity{}).Error
}
