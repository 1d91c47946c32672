package db

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-data-api/internal/domain/entity"
)

// MemoryObservationGateway keeps observations in insertion order, enforcing the same (city, date) key as the database
type MemoryObservationGateway struct {
	mutex        sync.RWMutex
	observations []entity.Observation
}

var _ ObservationGateway = (*MemoryObservationGateway)(nil)

func NewMemoryObservationGateway() *MemoryObservationGateway {
	return &MemoryObservationGateway{observations: make([]entity.Observation, 0)}
}

func (gateway *MemoryObservationGateway) FindAll(_ context.Context) ([]entity.Observation, error) {
	return gateway.filter(func(entity.Observation) bool { return true }), nil
}

func (gateway *MemoryObservationGateway) FindByCity(_ context.Context, city string) ([]entity.Observation, error) {
	return gateway.filter(func(o entity.Observation) bool { return o.City == city }), nil
}

func (gateway *MemoryObservationGateway) FindByCityAndDate(_ context.Context, city string, date time.Time) (*entity.Observation, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	for _, o := range gateway.observations {
		if o.City == city && o.Date.Equal(date) {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (gateway *MemoryObservationGateway) FindByCityAndDateBetween(_ context.Context, city string, start, end time.Time) ([]entity.Observation, error) {
	return gateway.filter(func(o entity.Observation) bool {
		return o.City == city && !o.Date.Before(start) && !o.Date.After(end)
	}), nil
}

func (gateway *MemoryObservationGateway) Save(ctx context.Context, observation entity.Observation) (*entity.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	now := time.Now().UTC()
	if observation.ID == "" {
		observation.ID = uuid.New().String()
	}
	if observation.CreatedAt.IsZero() {
		observation.CreatedAt = now
	}
	observation.UpdatedAt = now
	observation.Date = observation.Date.UTC()

	index := -1
	for i, o := range gateway.observations {
		if o.ID == observation.ID {
			index = i
			continue
		}
		if o.City == observation.City && o.Date.Equal(observation.Date) {
			return nil, ErrDuplicateObservation
		}
	}

	if index >= 0 {
		gateway.observations[index] = observation
	} else {
		gateway.observations = append(gateway.observations, observation)
	}

	saved := observation
	return &saved, nil
}

func (gateway *MemoryObservationGateway) DeleteByCity(ctx context.Context, city string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	kept := gateway.observations[:0]
	var deleted int64
	for _, o := range gateway.observations {
		if o.City == city {
			deleted++
			continue
		}
		kept = append(kept, o)
	}
	gateway.observations = kept
	return deleted, nil
}

func (gateway *MemoryObservationGateway) filter(match func(entity.Observation) bool) []entity.Observation {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	result := make([]entity.Observation, 0)
	for _, o := range gateway.observations {
		if match(o) {
			result = append(result, o)
		}
	}
	return result
}
