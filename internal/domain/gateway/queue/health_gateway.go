package queue

import (
	"context"

	"weather-data-api/internal/domain/model"
	"weather-data-api/pkg/sqs"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
	RegisterWorker(name string, worker *sqs.Worker)
	UnregisterWorker(name string)
}
