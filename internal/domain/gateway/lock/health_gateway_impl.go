package lock

import (
	"context"

	"weather-data-api/internal/domain/model"
	"weather-data-api/pkg/redis"
)

type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{checker: redis.NewHealthChecker(client)}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.checker.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
