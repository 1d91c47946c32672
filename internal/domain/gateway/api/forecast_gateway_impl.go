package api

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"weather-data-api/internal/domain/model/external"
	"weather-data-api/pkg/http"
)

// ErrCircuitOpen is returned while the provider circuit breaker rejects calls
var ErrCircuitOpen = errors.New("forecast provider circuit open")

// BreakerConfig configures the provider circuit breaker
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// forecastGatewayImpl implements the ForecastGateway interface. Clients are kept per provider URL.
type forecastGatewayImpl struct {
	clientOptions http.ClientOptions
	circuit       *gobreaker.CircuitBreaker

	mutex   sync.Mutex
	clients map[string]*http.Client
}

var _ ForecastGateway = (*forecastGatewayImpl)(nil)

// NewForecastGateway creates a ForecastGateway. Any backoff in clientOptions is discarded.
func NewForecastGateway(clientOptions http.ClientOptions, breaker BreakerConfig) ForecastGateway {
	clientOptions.Backoff = nil
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapHTTPLogger{Name: "forecast"}
	}

	threshold := breaker.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	circuit := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "forecast",
		MaxRequests: breaker.MaxRequests,
		Interval:    breaker.Interval,
		Timeout:     breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	})

	return &forecastGatewayImpl{
		clientOptions: clientOptions,
		circuit:       circuit,
		clients:       make(map[string]*http.Client),
	}
}

// GetForecast requests <providerURL>?key=<key>&q=<city>&days=1&aqi=no&alerts=no
func (f *forecastGatewayImpl) GetForecast(ctx context.Context, providerURL, providerKey, city string) (*external.ForecastResponse, error) {
	client := f.client(providerURL)

	result, err := f.circuit.Execute(func() (interface{}, error) {
		successResp, errResp, _, err := client.Request().
			WithContext(ctx).
			WithMethod(http.GET).
			WithPath("").
			WithQueryParams(map[string]string{
				"key":    providerKey,
				"q":      city,
				"days":   "1",
				"aqi":    "no",
				"alerts": "no",
			}).
			WithSuccessResp(&external.ForecastResponse{}).
			WithErrorResp(&external.APIErrorResponse{}).
			Execute()

		if err == nil {
			return successResp, nil
		}

		if errResp != nil {
			errorResponse := errResp.(*external.APIErrorResponse)
			if errorResponse.Error.Message != "" {
				return nil, fmt.Errorf("forecast provider: %s: %w", errorResponse.Error.Message, err)
			}
		}
		return nil, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}

	response, ok := result.(*external.ForecastResponse)
	if !ok || response == nil {
		return nil, nil
	}
	return response, nil
}

func (f *forecastGatewayImpl) client(providerURL string) *http.Client {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	client, ok := f.clients[providerURL]
	if !ok {
		client = http.NewHttpClient(providerURL, f.clientOptions)
		f.clients[providerURL] = client
	}
	return client
}
