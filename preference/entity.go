package preference

import (
	"atlas-sorter/sorting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

type Entity struct {
	TenantId  uuid.UUID `gorm:"not null;uniqueIndex:idx_preference_player"`
	PlayerId  uuid.UUID `gorm:"not null;uniqueIndex:idx_preference_player"`
	Method    string    `gorm:"not null"`
	SortOrder string    `gorm:"not null"`
}

func (e Entity) TableName() string {
	return "sort_preferences"
}

func Make(e Entity) (sorting.Preference, error) {
	return sorting.ParsePreference(e.Method, e.SortOrder)
}
