package http

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"
)

// BackoffConfig describes an exponential retry policy.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// RetryOn decides whether an attempt is retried. Defaults to transport errors, 429 and 5xx.
	RetryOn func(statusCode int, err error) bool
}

func defaultRetryOn(statusCode int, err error) bool {
	if err != nil {
		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}
	}
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

// interval returns the wait before retry n (1 based)
func (b *BackoffConfig) interval(n int) time.Duration {
	multiplier := b.Multiplier
	if multiplier <= 0 {
		multiplier = 2
	}
	wait := time.Duration(float64(b.InitialInterval) * math.Pow(multiplier, float64(n-1)))
	if b.MaxInterval > 0 && wait > b.MaxInterval {
		wait = b.MaxInterval
	}
	return wait
}

// doRequestWithBackoff runs doRequest, retrying according to backoff. A nil backoff falls back
// to the client default, and a nil default means exactly one attempt.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil {
		backoff = hc.backoff
	}

	maxRetries := 0
	retryOn := defaultRetryOn
	if backoff != nil {
		maxRetries = backoff.MaxRetries
		if backoff.RetryOn != nil {
			retryOn = backoff.RetryOn
		}
	}

	fullURL := hc.buildURL(path)
	for attempt := 0; ; attempt++ {
		start := time.Now()
		result, err := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		latency := time.Since(start).Milliseconds()

		if err == nil {
			hc.logger.LogResponseSuccess(method, fullURL, headers, "", result.statusCode, result.body, latency)
			return result.success, result.failure, result.statusCode, nil
		}

		if attempt >= maxRetries || !retryOn(result.statusCode, err) {
			hc.logger.LogResponseError(method, fullURL, headers, "", result.statusCode, result.body, latency, err)
			return result.success, result.failure, result.statusCode, err
		}

		hc.logger.LogRequestRetry(method, fullURL, headers, "", result.statusCode, result.body, latency, err, attempt+1, maxRetries)

		timer := time.NewTimer(backoff.interval(attempt + 1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, result.statusCode, ctx.Err()
		case <-timer.C:
		}
	}
}
