package userrepo

import (
	"context"

	"gorm.io/gorm"

	"foodatlas-server/internal/domain/user"
	"foodatlas-server/internal/infrastructure/database/dbschema"
	"foodatlas-server/internal/utils/platformerrors"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) user.Repository {
	return &UserGormRepository{db: db}
}

func (repo *UserGormRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return repo.findOne(ctx, "id = ?", id, "failed to find user by id", "4c9a1d7e-02b5-4f47-a9c3-5f1e8b6d2a90")
}

func (repo *UserGormRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return repo.findOne(ctx, "username = ?", username, "failed to find user by username", "d1f3b8a2-6c47-49e5-8e02-9ab4c7e3f516")
}

func (repo *UserGormRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return repo.findOne(ctx, "email = ?", email, "failed to find user by email", "7e5a2c90-1b8d-4f36-bc41-d02e9f6a8374")
}

func (repo *UserGormRepository) findOne(ctx context.Context, query string, arg any, message, code string) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where(query, arg).
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
			message,
			err,
			code,
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) Create(ctx context.Context, usr *user.User) (*user.User, error) {
	entity := dbschema.NewSchemaUser(usr)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user",
			err,
			"0b6e4f82-93da-4c15-a7d8-21c5e9f0b364",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) List(ctx context.Context) ([]*user.User, error) {
	var entities []dbschema.User
	if err := repo.db.WithContext(ctx).Order("username asc").Find(&entities).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list users",
			err,
			"a4d82e17-5f09-4b3c-96e1-3c7f2d8ba450",
		)
	}

	users := make([]*user.User, 0, len(entities))
	for i := range entities {
		users = append(users, entities[i].EtoD())
	}
	return users, nil
}

func (repo *UserGormRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&dbschema.User{}).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete user",
			err,
			"6f1c0d93-84ae-42b7-bd52-08e3a9c7f621",
		)
	}
	return nil
}
