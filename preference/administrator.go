package preference

import (
	"atlas-sorter/sorting"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func upsert(db *gorm.DB, tenantId uuid.UUID, playerId uuid.UUID, p sorting.Preference) error {
	e := &Entity{
		TenantId:  tenantId,
		PlayerId:  playerId,
		Method:    p.Method().String(),
		SortOrder: p.Order().String(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"method", "sort_order"}),
	}).Create(e).Error
}

func deleteByPlayerId(db *gorm.DB, tenantId uuid.UUID, playerId uuid.UUID) error {
	return db.Where(&Entity{TenantId: tenantId, PlayerId: playerId}).Delete(&Entity{}).Error
}
