package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hangarhq/hangar/internal/domain"
	"github.com/hangarhq/hangar/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Add inserts the user. The unique index on email is authoritative: a
// concurrent insert of the same email loses here regardless of any earlier
// lookup, and surfaces as a duplicate-key error.
func (r *UserRepository) Add(ctx context.Context, user domain.User) (domain.User, error) {
	model := userToModel(user)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.DuplicateKeyError{Key: user.Email}
		}
		return domain.User{}, translate(err, "user")
	}
	return userToDomain(model), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	var model models.User
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return domain.User{}, translate(err, "user")
	}
	return userToDomain(model), nil
}

func (r *UserRepository) FindByKey(ctx context.Context, email string) (domain.User, error) {
	var model models.User
	if err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error; err != nil {
		return domain.User{}, translate(err, "user")
	}
	return userToDomain(model), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []models.User
	if err := r.db.WithContext(ctx).Order("c_date").Find(&rows).Error; err != nil {
		return nil, translate(err, "user")
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userToDomain(row))
	}
	return users, nil
}

func userToModel(user domain.User) models.User {
	return models.User{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	}
}

func userToDomain(model models.User) domain.User {
	return domain.User{
		ID:       model.ID,
		Name:     model.Name,
		Email:    model.Email,
		Password: model.Password,
	}
}
