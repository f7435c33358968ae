package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hangarhq/hangar/internal/domain"
	"github.com/hangarhq/hangar/internal/infra/database/models"
)

type AirplaneRepository struct {
	db *gorm.DB
}

func NewAirplaneRepository(db *gorm.DB) *AirplaneRepository {
	return &AirplaneRepository{db: db}
}

func (r *AirplaneRepository) Add(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	model := airplaneToModel(airplane)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Airplane{}, translate(err, "airplane")
	}
	return airplaneToDomain(model), nil
}

func (r *AirplaneRepository) Update(ctx context.Context, airplane domain.Airplane) (domain.Airplane, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Airplane{}).
		Where("id = ?", airplane.ID).
		Updates(map[string]any{
			"model":        airplane.Model,
			"weight":       airplane.Weight,
			"manufacturer": airplane.Manufacturer,
		})
	if result.Error != nil {
		return domain.Airplane{}, translate(result.Error, "airplane")
	}
	// zero rows means the row vanished after the caller's existence check
	if result.RowsAffected == 0 {
		return domain.Airplane{}, domain.NotFoundError{Resource: "airplane"}
	}
	return airplane, nil
}

func (r *AirplaneRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Airplane{}, "id = ?", id).Error; err != nil {
		return translate(err, "airplane")
	}
	return nil
}

func (r *AirplaneRepository) FindByID(ctx context.Context, id string) (domain.Airplane, error) {
	var model models.Airplane
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return domain.Airplane{}, translate(err, "airplane")
	}
	return airplaneToDomain(model), nil
}

func (r *AirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	var rows []models.Airplane
	if err := r.db.WithContext(ctx).Order("c_date").Find(&rows).Error; err != nil {
		return nil, translate(err, "airplane")
	}

	airplanes := make([]domain.Airplane, 0, len(rows))
	for _, row := range rows {
		airplanes = append(airplanes, airplaneToDomain(row))
	}
	return airplanes, nil
}

func airplaneToModel(airplane domain.Airplane) models.Airplane {
	return models.Airplane{
		ID:           airplane.ID,
		Model:        airplane.Model,
		Weight:       airplane.Weight,
		Manufacturer: airplane.Manufacturer,
	}
}

func airplaneToDomain(model models.Airplane) domain.Airplane {
	return domain.Airplane{
		ID:           model.ID,
		Model:        model.Model,
		Weight:       model.Weight,
		Manufacturer: model.Manufacturer,
	}
}

// translate maps gorm errors onto the domain taxonomy. Anything unexpected is
// treated as a transient storage failure the caller may retry.
func translate(err error, resource string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFoundError{Resource: resource}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.DuplicateKeyError{}
	default:
		return domain.StorageError{Err: err}
	}
}
