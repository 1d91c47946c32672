package mapper

import (
	"time"

	"weather-data-api/internal/domain/apperr"
	"weather-data-api/internal/domain/entity"
	"weather-data-api/internal/domain/model"
	"weather-data-api/internal/domain/model/external"
	"weather-data-api/pkg/msg"
	"weather-data-api/pkg/util/dateutils"
)

const (
	ForecastDescription = "Average temperature forecast"
	MockDescription     = "Mock average temperature"
	MockTemperature     = 25.0
)

// ToEntity copies the DTO into a new, unsaved observation. The date is stored in UTC.
func ToEntity(dto model.ObservationDTO) entity.Observation {
	return entity.Observation{
		City:        dto.City,
		Temperature: dto.Temperature,
		Description: dto.Description,
		Date:        dto.Date.UTC(),
	}
}

func ToDTO(observation entity.Observation) model.ObservationDTO {
	return model.ObservationDTO{
		City:        observation.City,
		Temperature: observation.Temperature,
		Description: observation.Description,
		Date:        observation.Date.UTC(),
	}
}

func ToDTOs(observations []entity.Observation) []model.ObservationDTO {
	dtos := make([]model.ObservationDTO, 0, len(observations))
	for _, observation := range observations {
		dtos = append(dtos, ToDTO(observation))
	}
	return dtos
}

// MapForecastResponse turns the first forecast day into an observation.
// The provider's resolved location name wins over the requested city.
func MapForecastResponse(response *external.ForecastResponse, city string) (model.ObservationDTO, error) {
	if response == nil {
		return model.ObservationDTO{}, apperr.Conversion(msg.GetMessage("forecast.error.no-response"))
	}
	if response.Forecast == nil || len(response.Forecast.ForecastDay) == 0 {
		return model.ObservationDTO{}, apperr.Conversion(msg.GetMessage("forecast.error.no-days"))
	}

	day := response.Forecast.ForecastDay[0]
	date, err := dateutils.ParseDate(day.Date)
	if err != nil {
		return model.ObservationDTO{}, apperr.Conversion(msg.GetMessage("forecast.error.invalid-date", day.Date))
	}

	name := city
	if response.Location != nil && response.Location.Name != "" {
		name = response.Location.Name
	}

	return model.ObservationDTO{
		City:        name,
		Temperature: day.Day.AvgTempC,
		Description: ForecastDescription,
		Date:        date,
	}, nil
}

// MockObservation is the placeholder returned when the provider can not be used
func MockObservation(city string, now time.Time) model.ObservationDTO {
	return model.ObservationDTO{
		City:        city,
		Temperature: MockTemperature,
		Description: MockDescription,
		Date:        now,
	}
}
