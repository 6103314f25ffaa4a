package postgres

import (
	"context"

	"eventer/internal/domain/entity"
	domainerrors "eventer/internal/domain/errors"
	"eventer/internal/domain/repository"
	"eventer/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Create inserts a fresh location row and copies the generated ID back.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := model.FromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID

	return nil
}

// categoryRepository implements the domain.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a fresh category row and copies the generated ID back.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := model.FromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID

	return nil
}
