package redis

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds connection and pool settings. Build it with NewConfig.
type Config struct {
	Host     string
	Port     int
	Password string
	Database int

	PoolSize     int
	MinIdleConns int
	MaxRetries   int

	DialTimeout time.Duration
	IOTimeout   time.Duration
}

// Option adjusts a Config
type Option func(*Config)

// NewConfig starts from a local single-node setup and applies opts in order
func NewConfig(opts ...Option) Config {
	config := Config{
		Host:         "localhost",
		Port:         6379,
		PoolSize:     10,
		MinIdleConns: 1,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		IOTimeout:    3 * time.Second,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

func WithAddress(host string, port int) Option {
	return func(c *Config) {
		c.Host = host
		c.Port = port
	}
}

func WithAuth(password string, database int) Option {
	return func(c *Config) {
		c.Password = password
		c.Database = database
	}
}

// WithPoolSize ignores non-positive sizes so an unset property keeps the default
func WithPoolSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.PoolSize = size
		}
	}
}

func WithMaxRetries(retries int) Option {
	return func(c *Config) { c.MaxRetries = retries }
}

// WithDialTimeout ignores non-positive timeouts so an unset property keeps the default
func WithDialTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.DialTimeout = timeout
		}
	}
}

// Addr is the host:port dial address
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs []error
	if c.Host == "" {
		errs = append(errs, errors.New("host is empty"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is outside 1-65535", c.Port))
	}
	if c.Database < 0 || c.Database > 15 {
		errs = append(errs, fmt.Errorf("database %d is outside 0-15", c.Database))
	}
	if c.PoolSize < 1 || c.MinIdleConns < 0 || c.MinIdleConns > c.PoolSize {
		errs = append(errs, fmt.Errorf("pool of %d with %d idle connections is invalid", c.PoolSize, c.MinIdleConns))
	}
	if c.MaxRetries < -1 {
		errs = append(errs, fmt.Errorf("max retries %d must be -1 (disabled) or more", c.MaxRetries))
	}
	if c.DialTimeout < 0 || c.IOTimeout < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	return errors.Join(errs...)
}
