package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-data-api/configs"
	_ "weather-data-api/docs"
	"weather-data-api/internal/application/controller"
	"weather-data-api/internal/application/middleware"
	"weather-data-api/internal/application/processor"
	"weather-data-api/internal/application/schedule"
	"weather-data-api/internal/domain/gateway/api"
	"weather-data-api/internal/domain/gateway/db"
	"weather-data-api/internal/domain/gateway/lock"
	"weather-data-api/internal/domain/gateway/queue"
	"weather-data-api/internal/domain/usecase/health"
	"weather-data-api/internal/domain/usecase/observation"
	"weather-data-api/internal/infra/aws"
	"weather-data-api/internal/infra/database/gorm"
	"weather-data-api/internal/infra/database/sqlc"
	"weather-data-api/internal/infra/metrics"
	httpclient "weather-data-api/pkg/http"
	"weather-data-api/pkg/log"
	"weather-data-api/pkg/msg"
	"weather-data-api/pkg/redis"
	"weather-data-api/pkg/resource"
	"weather-data-api/pkg/sqs"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Validator = controller.NewRequestValidator()
	middleware.SetupRequestLogger(e)
	middleware.SetupMetrics(e)
	group := e.Group(configs.Env.ContextPath)

	// Init Gateways
	observationGateway, dbHealthGateway, closeStore, err := initStore(ctx, resource.GetString("app.db.driver"))
	if err != nil {
		log.Fatalf("Failed to initialize the observation store: %v", err)
	}
	defer closeStore()

	forecastGateway := api.NewForecastGateway(httpclient.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.forecast.timeout"),
		ReadTimeout:       resource.GetDuration("app.forecast.timeout"),
	}, api.BreakerConfig{
		MaxRequests:      resource.GetUint32("app.forecast.breaker.max-requests"),
		Interval:         resource.GetDuration("app.forecast.breaker.interval"),
		Timeout:          resource.GetDuration("app.forecast.breaker.timeout"),
		FailureThreshold: resource.GetUint32("app.forecast.breaker.failure-threshold"),
	})

	var redisClient *redis.Client
	var lockHealthGateway lock.HealthGateway
	if resource.GetBool("app.redis.enabled") {
		redisClient, err = redis.NewClient(redis.NewConfig(
			redis.WithAddress(resource.GetString("app.redis.host"), resource.GetInt("app.redis.port")),
			redis.WithAuth(resource.GetString("app.redis.password"), resource.GetInt("app.redis.database")),
			redis.WithPoolSize(resource.GetInt("app.redis.pool-size")),
			redis.WithDialTimeout(resource.GetDuration("app.redis.dial-timeout")),
		))
		if err != nil {
			log.Fatalf("Failed to initialize redis: %v", err)
		}
		defer redisClient.Close()
		if err := redisClient.Ping(ctx); err != nil {
			log.Warnf("Redis is not reachable yet, scheduled jobs will wait for it: %v", err)
		}
		lockHealthGateway = lock.NewRedisHealthGateway(redisClient)
	}

	importEnabled := resource.GetBool("app.forecast.import.enabled")
	importQueue := resource.GetString("app.forecast.import.queue")

	var sqsClient *awssqs.Client
	var queueSender queue.Sender
	var queueHealthGateway *queue.QueueHealthGateway
	if importEnabled {
		awsConfig, err := aws.LoadConfig(ctx)
		if err != nil {
			log.Fatalf("Failed to load AWS configuration: %v", err)
		}
		sqsClient = aws.NewSqsClient(awsConfig)
		queueSender = aws.NewSQSSenderAdapter(sqsClient)
		queueHealthGateway = queue.NewQueueHealthGateway()
	}

	// Init UseCase
	observationUseCase := observation.NewObservationUseCase(observation.Config{
		ForecastURL: resource.GetString("app.forecast.url"),
		ForecastKey: resource.GetString("app.forecast.key"),
		ImportQueue: importQueue,
		BatchSize:   resource.GetInt("app.forecast.import.batch-size"),
	}, observationGateway, forecastGateway, queueSender)

	var queueHealth queue.HealthGateway
	if queueHealthGateway != nil {
		queueHealth = queueHealthGateway
	}
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, queueHealth, lockHealthGateway)

	// Init Controller
	healthController := controller.NewHealthController(group, healthUseCase)
	observationController := controller.NewObservationController(group, observationUseCase, controller.ForecastProvider{
		URL: resource.GetString("app.forecast.url"),
		Key: resource.GetString("app.forecast.key"),
	})

	// Init Routes
	healthController.InitHealthRoutes()
	observationController.InitObservationRoutes()
	group.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	metricsScheduler, err := schedule.NewMetricsScheduler(observationUseCase, resource.GetDuration("app.metrics.refresh-interval"))
	if err != nil {
		log.Fatalf("Failed to initialize the metrics scheduler: %v", err)
	}
	if err := metricsScheduler.InitMetricsTasks(ctx); err != nil {
		log.Fatalf("Failed to start the metrics scheduler: %v", err)
	}

	// Init Import
	if importEnabled {
		worker, err := sqs.NewWorker(ctx, sqsClient, importQueue, processor.NewForecastProcessor(observationUseCase), &sqs.WorkerConfig{
			PoolSize: resource.GetInt("app.forecast.import.pool-size"),
			LogLevel: sqs.ErrorLevel,
		})
		if err != nil {
			log.Fatalf("Failed to initialize the forecast import worker: %v", err)
		}
		queueHealthGateway.RegisterWorker("forecast_import", worker)
		go worker.Start(ctx)

		forecastScheduler := schedule.NewForecastImportScheduler(
			observationUseCase,
			redisClient,
			resource.GetString("app.forecast.import.cron"),
			resource.GetInt("app.scheduler.lock-ttl"),
			resource.GetInt("app.scheduler.refresh-interval"),
		)
		if err := forecastScheduler.InitForecastImportTasks(ctx); err != nil {
			log.Fatalf("Failed to initialize the forecast import scheduler: %v", err)
		}
	}

	// Start Routes
	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started"))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down server: %v", err)
	}
}

// initStore opens the observation store selected by driver: gorm, sqlc or memory
func initStore(ctx context.Context, driver string) (db.ObservationGateway, db.HealthDBGateway, func(), error) {
	switch driver {
	case "gorm":
		gormDB, err := gorm.Open(gorm.DSN())
		if err != nil {
			return nil, nil, nil, err
		}
		if err := gorm.Migrate(gormDB); err != nil {
			return nil, nil, nil, err
		}
		closeStore := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return db.NewGormObservationGateway(gormDB), db.NewGormHealthDBGateway(gormDB), closeStore, nil
	case "sqlc":
		sqlDB, err := sqlc.Open(ctx, sqlc.DSN())
		if err != nil {
			return nil, nil, nil, err
		}
		if err := sqlc.Migrate(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, nil, nil, err
		}
		return db.NewSQLCObservationGateway(sqlDB), db.NewSQLCHealthDBGateway(sqlDB), func() { _ = sqlDB.Close() }, nil
	case "memory":
		log.Warn("Using the in-memory observation store, data is lost on restart")
		return db.NewMemoryObservationGateway(), db.MemoryHealthDBGateway{}, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown database driver %q", driver)
	}
}
