package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-data-api/internal/domain/usecase/observation"
	"weather-data-api/pkg/log"
	"weather-data-api/pkg/msg"
	"weather-data-api/pkg/redis"
)

// ForecastImportSchedulerConfig holds configuration for the forecast import scheduler
type ForecastImportSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// ForecastImportScheduler periodically enqueues a forecast import for every known city.
// With a Redis client only the instance holding the scheduler lock runs the cron.
type ForecastImportScheduler struct {
	cron        *cron.Cron
	useCase     observation.UseCase
	redisClient *redis.Client
	config      *ForecastImportSchedulerConfig
}

// NewForecastImportScheduler creates the scheduler. lockTTL and refreshInterval are in seconds.
func NewForecastImportScheduler(useCase observation.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *ForecastImportScheduler {
	return &ForecastImportScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &ForecastImportSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitForecastImportTasks validates the cron expression and starts scheduling in the background
func (s *ForecastImportScheduler) InitForecastImportTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() {
		s.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return err
	}

	if s.redisClient == nil {
		log.Warn("Redis not configured, forecast import scheduler runs without a distributed lock")
		s.cron.Start()
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
		return nil
	}

	go s.runWithLock(ctx)
	return nil
}

func (s *ForecastImportScheduler) runWithLock(ctx context.Context) {
	lock := redis.NewScheduledTaskLock(
		s.redisClient,
		"forecast_import_scheduler",
		s.getLockTTL(),
		s.getRefreshInterval(),
		"weather_data_schedules",
	)

	if err := lock.Lock(ctx); err != nil {
		if ctx.Err() == nil {
			log.Errorf("Failed to acquire distributed lock, forecast import scheduler will not be started: %v", err)
		}
		return
	}

	refreshErrChan := lock.AutoRefresh(ctx)

	s.cron.Start()
	log.Infof("Forecast import scheduler started with cron expression: %s", s.config.CronExpression)

	err := <-refreshErrChan
	s.Stop()

	if ctx.Err() != nil {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if unlockErr := lock.Unlock(releaseCtx); unlockErr != nil {
			log.Warnf("Failed to release forecast import scheduler lock: %v", unlockErr)
		}
		log.Info("Forecast import scheduler stopped gracefully")
		return
	}

	log.Errorf("Forecast import scheduler stopped due to lock refresh failure: %v", err)
}

// ExecuteScheduledTask enqueues the imports of one scheduled run
func (s *ForecastImportScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("forecast.import.cron-start"), zap.String("request_id", requestID))

	if err := s.useCase.EnqueueForecastImports(ctx, requestID); err != nil {
		log.Error(msg.GetMessage("forecast.import.cron-fail"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("forecast.import.cron-end"), zap.String("request_id", requestID))
}

// Stop waits for a running job and stops the cron
func (s *ForecastImportScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *ForecastImportScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *ForecastImportScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return time.Minute
}
