package external

// ForecastResponse represents the response from the forecast provider
type ForecastResponse struct {
	Location *ForecastLocation `json:"location"`
	Forecast *Forecast         `json:"forecast"`
}

// ForecastLocation represents the location resolved by the provider
type ForecastLocation struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Forecast holds the per day forecast entries
type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

// ForecastDay represents a single forecast day
type ForecastDay struct {
	Date string         `json:"date"`
	Day  ForecastDayAvg `json:"day"`
}

// ForecastDayAvg holds the aggregated figures of a forecast day
type ForecastDayAvg struct {
	MaxTempC float64 `json:"maxtemp_c"`
	MinTempC float64 `json:"mintemp_c"`
	AvgTempC float64 `json:"avgtemp_c"`
}

// APIErrorResponse represents error responses from the forecast provider
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
