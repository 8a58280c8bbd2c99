package tablepager

import (
	"fmt"

	"gorm.io/gorm"
)

// GORMSource loads every row of the query into memory, ordered by Sort.
// The query must have a model or table set, e.g.:
//
//	tablepager.GORMSource[User]{
//		DB:   db.Where("active = ?", true),
//		Sort: tablepager.Orderings{{Column: "id", Direction: tablepager.DirectionASC}},
//	}
type GORMSource[T any] struct {
	DB   *gorm.DB
	Sort Orderings
}

// Items - implements Source.
func (s GORMSource[T]) Items() ([]T, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("gorm source has no database handle")
	}

	db := s.DB
	if len(s.Sort) > 0 {
		if err := s.Sort.validate(); err != nil {
			return nil, fmt.Errorf("cannot load items: %w", err)
		}
		db = s.Sort.Apply(db)
	}

	var items []T
	if err := db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("cannot load items: %w", err)
	}

	return items, nil
}

var _ Source[any] = GORMSource[any]{}
