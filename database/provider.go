package database

import (
	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

type EntityProvider[E any] func(db *gorm.DB) model.Provider[E]

func Query[E any](db *gorm.DB, query interface{}) model.Provider[E] {
	var result E
	err := db.Where(query).First(&result).Error
	if err != nil {
		return model.ErrorProvider[E](err)
	}
	return model.FixedProvider[E](result)
}

func SliceQuery[E any](db *gorm.DB, query interface{}) model.Provider[[]E] {
	return OrderedSliceQuery[E](db, query, "")
}

// OrderedSliceQuery is SliceQuery with an ORDER BY clause. An empty order leaves rows unordered.
func OrderedSliceQuery[E any](db *gorm.DB, query interface{}, order string) model.Provider[[]E] {
	var results []E
	tx := db.Where(query)
	if order != "" {
		tx = tx.Order(order)
	}
	err := tx.Find(&results).Error
	if err != nil {
		return model.ErrorProvider[[]E](err)
	}
	return model.FixedProvider(results)
}
