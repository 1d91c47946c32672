package model

import (
	"encoding/json"
	"time"

	"weather-data-api/pkg/util/dateutils"
)

// ObservationDTO is the external representation of an observation
type ObservationDTO struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" swaggertype:"string" example:"2024-04-20"`
}

// UnmarshalJSON accepts the date either as yyyy-MM-dd or as an RFC 3339 timestamp
func (dto *ObservationDTO) UnmarshalJSON(data []byte) error {
	type alias ObservationDTO
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(dto)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Date == "" {
		dto.Date = time.Time{}
		return nil
	}

	date, err := dateutils.ParseDateOrTimestamp(aux.Date)
	if err != nil {
		return err
	}
	dto.Date = date
	return nil
}

// Outcome tells whether a write created or updated the observation
type Outcome string

const (
	OutcomeCreated Outcome = "CREATED"
	OutcomeUpdated Outcome = "UPDATED"
)

// CitiesResponse lists the distinct cities with stored observations
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// MessageResponse carries a confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries an error message
type ErrorResponse struct {
	Error string `json:"error"`
}
