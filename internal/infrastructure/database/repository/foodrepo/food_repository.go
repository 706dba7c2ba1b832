package foodrepo

import (
	"context"

	"gorm.io/gorm"

	"foodatlas-server/internal/domain/food"
	"foodatlas-server/internal/infrastructure/database/dbschema"
	"foodatlas-server/internal/utils/platformerrors"
)

type FoodGormRepository struct {
	db *gorm.DB
}

var _ food.Repository = (*FoodGormRepository)(nil)

func NewFoodGormRepository(db *gorm.DB) food.Repository {
	return &FoodGormRepository{db: db}
}

func (repo *FoodGormRepository) Create(ctx context.Context, entry *food.Food) (*food.Food, error) {
	entity := dbschema.NewSchemaFood(entry)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create food item",
			err,
			"2e8b5a47-f190-4d36-8cb2-74d0a1e9c583",
		)
	}
	return entity.EtoD(), nil
}

func (repo *FoodGormRepository) FindByID(ctx context.Context, id string) (*food.Food, error) {
	var entity dbschema.Food
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find food item by id",
			err,
			"91c7e3d0-4a58-4f12-b6e9-d5a2c80f7b14",
		)
	}
	return entity.EtoD(), nil
}

func (repo *FoodGormRepository) FindByFilter(ctx context.Context, filter food.Filter) ([]*food.Food, error) {
	query := repo.db.WithContext(ctx).Model(&dbschema.Food{})
	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}

	var entities []dbschema.Food
	if err := query.Order("created_at desc").Find(&entities).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list food items",
			err,
			"c5f2a918-6d04-4be7-93c1-08b7d4e6a259",
		)
	}

	entries := make([]*food.Food, 0, len(entities))
	for i := range entities {
		entries = append(entries, entities[i].EtoD())
	}
	return entries, nil
}

func (repo *FoodGormRepository) Update(ctx context.Context, entry *food.Food) (*food.Food, error) {
	entity := dbschema.NewSchemaFood(entry)
	// created_by is immutable after creation
	err := repo.db.WithContext(ctx).
		Model(&dbschema.Food{ID: entity.ID}).
		Select("name", "origin", "description").
		Updates(entity).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update food item",
			err,
			"38d9b0c6-12ef-45a8-b574-ca61f9e2d807",
		)
	}
	return repo.FindByID(ctx, entry.ID)
}

func (repo *FoodGormRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&dbschema.Food{}).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete food item",
			err,
			"e0a47c25-9b13-48d6-a8f2-57c3d1b9e640",
		)
	}
	return nil
}
