package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ErrLockNotHeld is returned when the lock key holds another owner's value
var ErrLockNotHeld = errors.New("lock was not held by this client")

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

const refreshScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("PEXPIRE", KEYS[1], ARGV[2])
	else
		return 0
	end
`

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration
	// MaxRetries is the maximum number of retry attempts. A negative value retries until the context is done.
	MaxRetries int
	// RefreshInterval is the interval for refreshing the lock
	RefreshInterval time.Duration
	// LockNamespace is the namespace for organizing locks
	LockNamespace string
}

// DefaultLockOptions returns default lock options
func DefaultLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             30 * time.Second,
		RetryDelay:      100 * time.Millisecond,
		MaxRetries:      10,
		RefreshInterval: 10 * time.Second,
	}
}

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = DefaultLockOptions()
	}
	return &Lock{
		client: client,
		key:    key,
		value:  generateLockValue(),
		opts:   opts,
	}
}

// NewScheduledTaskLock creates a lock meant to be held for the lifetime of a scheduler.
// Lock blocks until the key is free, retrying every refreshInterval, so a standby
// instance takes over once the current holder stops refreshing.
func NewScheduledTaskLock(client *Client, key string, ttl, refreshInterval time.Duration, namespace string) *Lock {
	return NewLock(client, key, &LockOptions{
		TTL:             ttl,
		RetryDelay:      refreshInterval,
		MaxRetries:      -1,
		RefreshInterval: refreshInterval,
		LockNamespace:   namespace,
	})
}

// buildLockKey constructs the full lock key using LockNamespace::lockKey format
func (l *Lock) buildLockKey() string {
	if l.opts.LockNamespace != "" {
		return l.opts.LockNamespace + "::" + l.key
	}
	return l.key
}

// Lock attempts to acquire the lock
func (l *Lock) Lock(ctx context.Context) error {
	fullKey := l.buildLockKey()
	for attempt := 0; l.opts.MaxRetries < 0 || attempt <= l.opts.MaxRetries; attempt++ {
		acquired, err := l.client.Raw().SetNX(ctx, fullKey, l.value, l.opts.TTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if acquired {
			return nil
		}

		if attempt == l.opts.MaxRetries {
			break
		}

		timer := time.NewTimer(l.opts.RetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("failed to acquire lock after %d attempts", l.opts.MaxRetries+1)
}

// Unlock releases the lock
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.Raw().Eval(ctx, unlockScript, []string{l.buildLockKey()}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL
func (l *Lock) Refresh(ctx context.Context) error {
	result, err := l.client.Raw().Eval(ctx, refreshScript, []string{l.buildLockKey()}, l.value, l.opts.TTL.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// IsLocked checks if the lock is currently held by this client
func (l *Lock) IsLocked(ctx context.Context) (bool, error) {
	value, err := l.client.Raw().Get(ctx, l.buildLockKey()).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}

	return value == l.value, nil
}

// AutoRefresh starts a goroutine that automatically refreshes the lock.
// The returned channel receives exactly one value: the refresh error, or ctx.Err() on cancellation.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}

// generateLockValue generates a unique value for the lock
func generateLockValue() string {
	return uuid.NewString()
}
