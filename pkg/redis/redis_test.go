package redis

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", NewConfig(), false},
		{"empty host", NewConfig(WithAddress("", 6379)), true},
		{"port out of range", NewConfig(WithAddress("localhost", 70000)), true},
		{"database out of range", NewConfig(WithAuth("", 16)), true},
		{"retries disabled", NewConfig(WithMaxRetries(-1)), false},
		{"retries below disabled", NewConfig(WithMaxRetries(-2)), true},
		{"negative timeout", func() Config { c := NewConfig(); c.IOTimeout = -time.Second; return c }(), true},
		{"idle above pool", func() Config { c := NewConfig(WithPoolSize(2)); c.MinIdleConns = 3; return c }(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigValidateReportsEveryProblem(t *testing.T) {
	err := NewConfig(WithAddress("", 0), WithAuth("", -1)).Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, part := range []string{"host is empty", "port 0", "database -1"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %q", err, part)
		}
	}
}

func TestNewConfigOptions(t *testing.T) {
	config := NewConfig(
		WithAddress("cache.internal", 6380),
		WithAuth("secret", 2),
		WithPoolSize(0),
		WithDialTimeout(0),
	)
	if config.Addr() != "cache.internal:6380" || config.Password != "secret" || config.Database != 2 {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.PoolSize != 10 || config.DialTimeout != 5*time.Second {
		t.Fatalf("unset pool size and dial timeout must keep defaults, got %+v", config)
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	if _, err := NewClient(NewConfig(WithAddress("localhost", 0))); err == nil {
		t.Fatal("expected an error for port 0")
	}
}

func TestClientTargetOmitsPassword(t *testing.T) {
	client, err := NewClient(NewConfig(WithAddress("127.0.0.1", 6390), WithAuth("secret", 3)))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	target := client.Target()
	if target["host"] != "127.0.0.1" || target["port"] != "6390" || target["database"] != "3" {
		t.Fatalf("unexpected target %v", target)
	}
	for _, v := range target {
		if v == "secret" {
			t.Fatal("target must not carry the password")
		}
	}
}

func TestScheduledTaskLockKey(t *testing.T) {
	client, err := NewClient(NewConfig())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	lock := NewScheduledTaskLock(client, "forecast_import", time.Minute, 10*time.Second, "schedules")
	if got := lock.buildLockKey(); got != "schedules::forecast_import" {
		t.Fatalf("unexpected key %q", got)
	}
	if lock.opts.MaxRetries >= 0 || lock.opts.RetryDelay != 10*time.Second {
		t.Fatalf("scheduled lock must retry forever at the refresh interval, got %+v", lock.opts)
	}

	other := NewScheduledTaskLock(client, "forecast_import", time.Minute, 10*time.Second, "")
	if other.buildLockKey() != "forecast_import" {
		t.Fatalf("unexpected key %q", other.buildLockKey())
	}
	if other.value == lock.value {
		t.Fatal("lock values must be unique per lock")
	}
}

func TestHealthCheckUnreachable(t *testing.T) {
	client, err := NewClient(NewConfig(
		WithAddress("127.0.0.1", 1),
		WithMaxRetries(-1),
		WithDialTimeout(200*time.Millisecond),
	))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	status := NewHealthChecker(client).HealthCheck(context.Background())
	if status.Status != StatusDown {
		t.Fatalf("expected DOWN, got %s", status.Status)
	}
	if status.Details["error"] == "" || status.Details["port"] != "1" {
		t.Fatalf("unexpected details %v", status.Details)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := NewScheduledTaskLock(client, "k", time.Minute, time.Second, "").Lock(ctx); err == nil {
		t.Fatal("expected lock acquisition to fail without a server")
	}
}
