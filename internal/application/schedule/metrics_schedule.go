package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"weather-data-api/internal/domain/usecase/observation"
	"weather-data-api/internal/infra/metrics"
	"weather-data-api/pkg/log"
)

// MetricsScheduler refreshes store backed gauges on every instance
type MetricsScheduler struct {
	scheduler gocron.Scheduler
	useCase   observation.UseCase
	interval  time.Duration
}

func NewMetricsScheduler(useCase observation.UseCase, interval time.Duration) (*MetricsScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics scheduler: %w", err)
	}
	if interval <= 0 {
		interval = time.Minute
	}

	return &MetricsScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		interval:  interval,
	}, nil
}

// InitMetricsTasks starts the refresh job and stops it when ctx is done
func (s *MetricsScheduler) InitMetricsTasks(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.RefreshTrackedCities),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule tracked cities refresh: %w", err)
	}

	s.scheduler.Start()

	go func() {
		<-ctx.Done()
		if err := s.scheduler.Shutdown(); err != nil {
			log.Warnf("Failed to stop metrics scheduler: %v", err)
		}
	}()
	return nil
}

// RefreshTrackedCities updates the tracked cities gauge. The gauge keeps its last value when the store fails.
func (s *MetricsScheduler) RefreshTrackedCities(ctx context.Context) {
	cities, err := s.useCase.ListCities(ctx)
	if err != nil {
		log.Warnf("Failed to refresh tracked cities: %v", err)
		return
	}
	metrics.TrackedCities.Set(float64(len(cities.Cities)))
}
