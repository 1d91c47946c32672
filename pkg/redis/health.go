package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is the outcome of a redis health check
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck carries the status plus target and pool details
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings redis under its own timeout
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client,
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings redis and, when it answers, reports the connection pool state
func (h *HealthChecker) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	details := h.client.Target()
	if err := h.client.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	stats := h.client.Raw().PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	details["timeouts"] = strconv.FormatUint(uint64(stats.Timeouts), 10)

	return RedisHealthCheck{Status: StatusUp, Details: details}
}
