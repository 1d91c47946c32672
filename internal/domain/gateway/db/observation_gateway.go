package db

import (
	"context"
	"errors"
	"time"

	"weather-data-api/internal/domain/entity"
)

// ErrDuplicateObservation is returned by Save when another observation already holds the (city, date) key
var ErrDuplicateObservation = errors.New("observation for city and date already exists")

type ObservationGateway interface {
	FindAll(ctx context.Context) ([]entity.Observation, error)
	FindByCity(ctx context.Context, city string) ([]entity.Observation, error)
	// FindByCityAndDate returns nil, nil when no observation matches
	FindByCityAndDate(ctx context.Context, city string, date time.Time) (*entity.Observation, error)
	// FindByCityAndDateBetween matches dates in [start, end]
	FindByCityAndDateBetween(ctx context.Context, city string, start, end time.Time) ([]entity.Observation, error)

	// Save inserts the observation when its ID is empty or unknown and overwrites it otherwise
	Save(ctx context.Context, observation entity.Observation) (*entity.Observation, error)
	DeleteByCity(ctx context.Context, city string) (int64, error)
}
