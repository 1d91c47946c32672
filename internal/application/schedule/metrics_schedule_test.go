package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"weather-data-api/internal/domain/model"
	"weather-data-api/internal/domain/usecase/observation"
	"weather-data-api/internal/infra/metrics"
)

type citiesUseCase struct {
	observation.UseCase
	cities []string
	err    error
}

func (c citiesUseCase) ListCities(context.Context) (model.CitiesResponse, error) {
	return model.CitiesResponse{Cities: c.cities}, c.err
}

func TestRefreshTrackedCities(t *testing.T) {
	scheduler, err := NewMetricsScheduler(citiesUseCase{cities: []string{"Pune", "Delhi"}}, 0)
	if err != nil {
		t.Fatalf("NewMetricsScheduler() error = %v", err)
	}
	if scheduler.interval != time.Minute {
		t.Fatalf("expected the default interval, got %v", scheduler.interval)
	}

	scheduler.RefreshTrackedCities(context.Background())
	if got := gaugeValue(t); got != 2 {
		t.Fatalf("expected 2 tracked cities, got %v", got)
	}

	scheduler.useCase = citiesUseCase{err: errors.New("connection refused")}
	scheduler.RefreshTrackedCities(context.Background())
	if got := gaugeValue(t); got != 2 {
		t.Fatalf("a failed refresh must keep the last value, got %v", got)
	}
}

func gaugeValue(t *testing.T) float64 {
	t.Helper()
	var metric dto.Metric
	if err := metrics.TrackedCities.Write(&metric); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return metric.GetGauge().GetValue()
}
