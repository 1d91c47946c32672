package redis

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
)

// Client is the connection shared by the scheduler locks and the health check
type Client struct {
	rdb    *goredis.Client
	config Config
}

// NewClient validates config and opens a lazily connecting pool
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid redis config: %w", err)
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         config.Addr(),
		Password:     config.Password,
		DB:           config.Database,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.IOTimeout,
		WriteTimeout: config.IOTimeout,
	})

	return &Client{rdb: rdb, config: config}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Raw exposes the go-redis client for commands this package does not wrap
func (c *Client) Raw() *goredis.Client {
	return c.rdb
}

// Target describes the server this client talks to, without the password
func (c *Client) Target() map[string]string {
	return map[string]string{
		"host":     c.config.Host,
		"port":     strconv.Itoa(c.config.Port),
		"database": strconv.Itoa(c.config.Database),
	}
}
