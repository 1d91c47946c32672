package observation

import (
	"context"
	"time"

	"weather-data-api/internal/domain/model"
)

type UseCase interface {
	// ListCities returns the distinct cities with stored observations, in first seen order
	ListCities(ctx context.Context) (model.CitiesResponse, error)

	// FindByCity returns every observation of a city
	FindByCity(ctx context.Context, city string) ([]model.ObservationDTO, error)

	// Create stores a new observation for city; the (city, date) key must be free
	Create(ctx context.Context, city string, dto model.ObservationDTO) (model.ObservationDTO, model.Outcome, error)

	// Update overwrites temperature and description of the observation at (city, dto.Date)
	Update(ctx context.Context, city string, dto model.ObservationDTO) (model.ObservationDTO, model.Outcome, error)

	// DeleteByCity removes every observation of a city
	DeleteByCity(ctx context.Context, city string) (model.MessageResponse, error)

	// FindByCityAndDateRange returns the observations between start and the end of end's day
	FindByCityAndDateRange(ctx context.Context, city string, start, end *time.Time) ([]model.ObservationDTO, error)

	// FindByCityAndSort returns the observations of a city ordered by sortBy
	FindByCityAndSort(ctx context.Context, city, sortBy, order string) ([]model.ObservationDTO, error)

	// GetForecast asks the provider for a forecast, substituting a mock when it can not be used
	GetForecast(ctx context.Context, city, providerURL, providerKey string) model.ForecastResult

	// ImportForecast stores a live forecast for city, creating or updating its observation
	ImportForecast(ctx context.Context, city string) (model.ObservationDTO, model.Outcome, error)

	// EnqueueForecastImports sends one import request per known city to the import queue
	EnqueueForecastImports(ctx context.Context, requestID string) error
}
