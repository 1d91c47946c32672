package validation

import (
	"strings"
	"time"

	"weather-data-api/internal/domain/apperr"
	"weather-data-api/internal/domain/model"
	"weather-data-api/pkg/msg"
)

const (
	MinTemperature = -100.0
	MaxTemperature = 100.0
)

// ValidateCityName rejects empty names and the literal "null" in any case
func ValidateCityName(name string) error {
	if name == "" || strings.EqualFold(name, "null") {
		return apperr.Validation(msg.GetMessage("validation.city.empty"))
	}
	return nil
}

// ValidateTemperatureRange rejects temperatures outside [-100, 100]
func ValidateTemperatureRange(temperature float64) error {
	if temperature < MinTemperature || temperature > MaxTemperature {
		return apperr.Validation(msg.GetMessage("validation.temperature.range"))
	}
	return nil
}

// ValidateObservation checks the city, then the temperature, then that a date is present
func ValidateObservation(dto *model.ObservationDTO) error {
	if dto == nil {
		return apperr.Validation(msg.GetMessage("validation.observation.empty"))
	}
	if err := ValidateCityName(dto.City); err != nil {
		return err
	}
	if err := ValidateTemperatureRange(dto.Temperature); err != nil {
		return err
	}
	if dto.Date.IsZero() {
		return apperr.Validation(msg.GetMessage("validation.date.empty"))
	}
	return nil
}

// ValidateDateRange requires both bounds and end not before start. Zero times count as absent.
func ValidateDateRange(start, end *time.Time) error {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return apperr.Validation(msg.GetMessage("validation.date-range.empty"))
	}
	if end.Before(*start) {
		return apperr.Validation(msg.GetMessage("validation.date-range.order"))
	}
	return nil
}
