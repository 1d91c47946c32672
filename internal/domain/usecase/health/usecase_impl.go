package health

import (
	"context"

	"weather-data-api/internal/domain/gateway/db"
	"weather-data-api/internal/domain/gateway/lock"
	"weather-data-api/internal/domain/gateway/queue"
	"weather-data-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
	lockGateway  lock.HealthGateway
}

// NewHealthUseCase builds the health check. A nil gateway marks its component as not configured.
func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway, lockGateway lock.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
		lockGateway:  lockGateway,
	}
}

// CheckHealth is UP unless a configured component is DOWN
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := model.UnknownStatus("database not configured")
	if useCase.dbGateway != nil {
		dbHealth = useCase.dbGateway.Health(ctx)
	}

	queueHealth := model.UnknownStatus("queue not configured")
	if useCase.queueGateway != nil {
		queueHealth = useCase.queueGateway.Health(ctx)
	}

	redisHealth := model.UnknownStatus("redis not configured")
	if useCase.lockGateway != nil {
		redisHealth = useCase.lockGateway.Health(ctx)
	}

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, queueHealth, redisHealth} {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Queue:    queueHealth,
		Redis:    redisHealth,
	}
}
