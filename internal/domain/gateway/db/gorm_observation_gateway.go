package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"weather-data-api/internal/domain/entity"
)

type GormObservationGateway struct {
	DB *gorm.DB
}

var _ ObservationGateway = (*GormObservationGateway)(nil)

func NewGormObservationGateway(db *gorm.DB) *GormObservationGateway {
	return &GormObservationGateway{DB: db}
}

func (gateway *GormObservationGateway) FindAll(ctx context.Context) ([]entity.Observation, error) {
	observations := make([]entity.Observation, 0)
	if err := gateway.DB.WithContext(ctx).Order("created_at, id").Find(&observations).Error; err != nil {
		return nil, fmt.Errorf("find all observations: %w", err)
	}
	return observations, nil
}

func (gateway *GormObservationGateway) FindByCity(ctx context.Context, city string) ([]entity.Observation, error) {
	observations := make([]entity.Observation, 0)
	err := gateway.DB.WithContext(ctx).
		Where("city = ?", city).
		Order("created_at, id").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("find observations of %s: %w", city, err)
	}
	return observations, nil
}

func (gateway *GormObservationGateway) FindByCityAndDate(ctx context.Context, city string, date time.Time) (*entity.Observation, error) {
	var observation entity.Observation
	err := gateway.DB.WithContext(ctx).
		Where("city = ? AND date = ?", city, date.UTC()).
		Take(&observation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find observation of %s: %w", city, err)
	}
	return &observation, nil
}

func (gateway *GormObservationGateway) FindByCityAndDateBetween(ctx context.Context, city string, start, end time.Time) ([]entity.Observation, error) {
	observations := make([]entity.Observation, 0)
	err := gateway.DB.WithContext(ctx).
		Where("city = ? AND date BETWEEN ? AND ?", city, start.UTC(), end.UTC()).
		Order("created_at, id").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("find observations of %s in range: %w", city, err)
	}
	return observations, nil
}

func (gateway *GormObservationGateway) Save(ctx context.Context, observation entity.Observation) (*entity.Observation, error) {
	observation.Date = observation.Date.UTC()

	err := gateway.DB.WithContext(ctx).Save(&observation).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateObservation
	}
	if err != nil {
		return nil, fmt.Errorf("save observation of %s: %w", observation.City, err)
	}
	return &observation, nil
}

func (gateway *GormObservationGateway) DeleteByCity(ctx context.Context, city string) (int64, error) {
	result := gateway.DB.WithContext(ctx).Where("city = ?", city).Delete(&entity.Observation{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete observations of %s: %w", city, result.Error)
	}
	return result.RowsAffected, nil
}
