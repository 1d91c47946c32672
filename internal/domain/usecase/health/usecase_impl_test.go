package health

import (
	"context"
	"testing"

	"weather-data-api/internal/domain/gateway/db"
	"weather-data-api/internal/domain/gateway/queue"
	"weather-data-api/internal/domain/model"
)

type staticHealth struct {
	status model.HealthStatus
}

func (s staticHealth) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status, Details: map[string]string{}}
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		useCase    UseCase
		wantStatus model.HealthStatus
	}{
		{
			name:       "memory store without queue or redis",
			useCase:    NewHealthUseCase(db.MemoryHealthDBGateway{}, nil, nil),
			wantStatus: model.StatusUp,
		},
		{
			name:       "no workers registered yet",
			useCase:    NewHealthUseCase(db.MemoryHealthDBGateway{}, queue.NewQueueHealthGateway(), staticHealth{model.StatusUp}),
			wantStatus: model.StatusUp,
		},
		{
			name:       "database down",
			useCase:    NewHealthUseCase(staticHealth{model.StatusDown}, nil, nil),
			wantStatus: model.StatusDown,
		},
		{
			name:       "redis down",
			useCase:    NewHealthUseCase(staticHealth{model.StatusUp}, nil, staticHealth{model.StatusDown}),
			wantStatus: model.StatusDown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			response := tc.useCase.CheckHealth(context.Background())
			if response.Status != tc.wantStatus {
				t.Fatalf("expected %s, got %+v", tc.wantStatus, response)
			}
		})
	}

	response := NewHealthUseCase(nil, nil, nil).CheckHealth(context.Background())
	if response.Database.Status != model.StatusUnknown || response.Redis.Status != model.StatusUnknown {
		t.Fatalf("unconfigured components must be UNKNOWN, got %+v", response)
	}
}
