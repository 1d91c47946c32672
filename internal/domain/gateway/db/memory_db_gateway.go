package db

import (
	"context"

	"weather-data-api/internal/domain/model"
)

type MemoryHealthDBGateway struct{}

var _ HealthDBGateway = MemoryHealthDBGateway{}

func (MemoryHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := ctx.Err(); err != nil {
		return downStatus(err)
	}
	return upStatus("memory")
}
