package lock

import (
	"context"
	"testing"
	"time"

	"weather-data-api/internal/domain/model"
	"weather-data-api/pkg/redis"
)

func TestRedisHealthGatewayDown(t *testing.T) {
	client, err := redis.NewClient(redis.NewConfig(
		redis.WithAddress("127.0.0.1", 1),
		redis.WithMaxRetries(-1),
		redis.WithDialTimeout(200*time.Millisecond),
	))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	status := NewRedisHealthGateway(client).Health(context.Background())
	if status.Status != model.StatusDown {
		t.Fatalf("expected DOWN, got %s", status.Status)
	}
	if status.Details["host"] != "127.0.0.1" {
		t.Fatalf("unexpected details %v", status.Details)
	}
}
