package model

// ForecastStatus distinguishes a provider forecast from a mock substitution
type ForecastStatus string

const (
	ForecastLive     ForecastStatus = "LIVE"
	ForecastDegraded ForecastStatus = "DEGRADED"
)

// ForecastResult is either a live forecast or a degraded mock observation.
// Reason is only set for degraded results.
type ForecastResult struct {
	Status      ForecastStatus `json:"status"`
	Observation ObservationDTO `json:"observation"`
	Reason      string         `json:"reason,omitempty"`
}

func (r ForecastResult) IsDegraded() bool {
	return r.Status == ForecastDegraded
}

// ForecastImportMessage is the queue payload requesting a forecast import for a city
type ForecastImportMessage struct {
	City      string `json:"city"`
	RequestID string `json:"requestId"`
}
