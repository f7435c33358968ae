package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/hangarhq/hangar/internal/domain"
)

// UserUsecase exposes registration and reads for users. There is no update
// or delete surface; email is the natural uniqueness key.
type UserUsecase struct {
	entity *entityUsecase[domain.User]
}

func NewUserUsecase(repo UserRepository, events Publisher) *UserUsecase {
	return &UserUsecase{
		entity: &entityUsecase[domain.User]{
			resource: "user",
			repo:     repo,
			validate: domain.ValidateUser,
			key:      func(u domain.User) string { return u.Email },
			lookup:   repo,
			events:   events,
			newID:    uuid.NewString,
			eventBody: func(u domain.User) any {
				return u.View()
			},
		},
	}
}

func (uc *UserUsecase) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return uc.entity.Create(ctx, user)
}

func (uc *UserUsecase) Get(ctx context.Context, id string) (domain.User, error) {
	return uc.entity.Get(ctx, id)
}

func (uc *UserUsecase) List(ctx context.Context) ([]domain.User, error) {
	return uc.entity.List(ctx)
}
