package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/hangarhq/hangar/internal/domain"
)

// AirplaneUsecase exposes the full lifecycle for registered aircraft.
type AirplaneUsecase struct {
	entity *entityUsecase[domain.Airplane]
}

func NewAirplaneUsecase(repo AirplaneRepository, events Publisher) *AirplaneUsecase {
	return &AirplaneUsecase{
		entity: &entityUsecase[domain.Airplane]{
			resource: "airplane",
			repo:     repo,
			mut:      repo,
			validate: domain.ValidateAirplane,
			events:   events,
			newID:    uuid.NewString,
		},
	}
}

func (uc *AirplaneUsecase) Create(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	return uc.entity.Create(ctx, airplane)
}

func (uc *AirplaneUsecase) Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	return uc.entity.Update(ctx, airplane)
}

func (uc *AirplaneUsecase) Delete(ctx context.Context, id string) error {
	return uc.entity.Delete(ctx, id)
}

func (uc *AirplaneUsecase) Get(ctx context.Context, id string) (domain.Airplane, error) {
	return uc.entity.Get(ctx, id)
}

func (uc *AirplaneUsecase) List(ctx context.Context) ([]domain.Airplane, error) {
	return uc.entity.List(ctx)
}
