package http

import (
	"strings"

	"go.uber.org/zap"

	"weather-data-api/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}
func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}
func (noopLogger) LogRequestRetry(string, string, map[string]string, string, int, string, int64, error, int, int) {
}

// ZapHTTPLogger writes outgoing calls through pkg/log. Query strings may carry credentials, so
// only the path part of the URL is logged.
type ZapHTTPLogger struct {
	Name string
}

var _ HTTPLogger = ZapHTTPLogger{}

func (l ZapHTTPLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("http request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)))
}

func (l ZapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debug("http response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l ZapHTTPLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http response error",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (l ZapHTTPLogger) LogRequestRetry(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error, retryCount, maxRetries int) {
	log.Warn("http request retry",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", stripQuery(url)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}

func stripQuery(url string) string {
	path, _, _ := strings.Cut(url, "?")
	return path
}
