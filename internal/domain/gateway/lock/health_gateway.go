package lock

import (
	"context"

	"weather-data-api/internal/domain/model"
)

// HealthGateway reports the state of the store backing the scheduler lock
type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
