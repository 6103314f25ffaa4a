// Package model contains the GORM persistence models mirroring the database
// tables, plus the mappers between models and domain entities.
package model

import "eventer/internal/domain/entity"

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Street  string `gorm:"type:varchar(255);not null"`
	Number  int    `gorm:"not null"`
	City    string `gorm:"type:varchar(100);not null"`
	Country string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// FromLocationDomain maps a pure domain location to its persistence model.
func FromLocationDomain(location *entity.Location) *LocationModel {
	return &LocationModel{
		ID:      location.ID,
		Street:  location.Street,
		Number:  location.Number,
		City:    location.City,
		Country: location.Country,
	}
}

// ToLocationDomain maps a persistence model back to a pure domain location.
func ToLocationDomain(m *LocationModel) entity.Location {
	return entity.Location{
		ID:      m.ID,
		Street:  m.Street,
		Number:  m.Number,
		City:    m.City,
		Country: m.Country,
	}
}

// FromCategoryDomain maps a pure domain category to its persistence model.
func FromCategoryDomain(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

// ToCategoryDomain maps a persistence model back to a pure domain category.
func ToCategoryDomain(m *CategoryModel) entity.Category {
	return entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}
