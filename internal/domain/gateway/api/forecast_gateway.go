package api

import (
	"context"

	"weather-data-api/internal/domain/model/external"
)

// ForecastGateway defines the calls made to the external forecast provider
type ForecastGateway interface {
	// GetForecast requests a one day forecast for city from the provider at providerURL.
	// No retries are made; an open circuit fails fast.
	GetForecast(ctx context.Context, providerURL, providerKey, city string) (*external.ForecastResponse, error)
}
