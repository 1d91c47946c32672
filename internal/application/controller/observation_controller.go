package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-data-api/internal/domain/apperr"
	"weather-data-api/internal/domain/model"
	"weather-data-api/internal/domain/usecase/observation"
	"weather-data-api/internal/domain/validation"
	"weather-data-api/internal/infra/metrics"
	"weather-data-api/pkg/log"
	"weather-data-api/pkg/msg"
	"weather-data-api/pkg/util/dateutils"
)

// ForecastProvider is the upstream used by the forecast route
type ForecastProvider struct {
	URL string
	Key string
}

// HistoryQuery holds the date range of the history route
type HistoryQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// SortQuery holds the ordering of the sort route
type SortQuery struct {
	SortBy string `query:"sort_by"`
	Order  string `query:"order"`
}

type ObservationController struct {
	api      *echo.Group
	useCase  observation.UseCase
	provider ForecastProvider
}

func NewObservationController(api *echo.Group, useCase observation.UseCase, provider ForecastProvider) *ObservationController {
	return &ObservationController{api: api, useCase: useCase, provider: provider}
}

// InitObservationRoutes initializes weather observation routes
func (controller *ObservationController) InitObservationRoutes() {
	controller.api.GET("/weather/all", controller.ListCities)
	controller.api.GET("/weather/:city", controller.FindByCity)
	controller.api.POST("/weather/:city", controller.Create)
	controller.api.PUT("/weather/:city", controller.Update)
	controller.api.DELETE("/weather/:city", controller.DeleteByCity)
	controller.api.GET("/weather/:city/", controller.FindByCityAndSort)
	controller.api.GET("/weather/:city/history", controller.FindByCityAndDateRange)
	controller.api.GET("/weather/:city/forecast", controller.GetForecast)

	for _, path := range []string{"/weather", "/weather/"} {
		controller.api.Match([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}, path, controller.MissingCity)
	}
}

// ListCities godoc
// @Summary List cities
// @Description Distinct city names with stored observations
// @Tags weather
// @Produce json
// @Success 200 {object} model.CitiesResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /weather/all [get]
func (controller *ObservationController) ListCities(c echo.Context) error {
	cities, err := controller.useCase.ListCities(c.Request().Context())
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

// FindByCity godoc
// @Summary Get city observations
// @Description Every observation of a city. With sort_by the observations are ordered by that field.
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Param sort_by query string false "Sort field, only temperature is supported"
// @Param order query string false "asc or desc" default(asc)
// @Success 200 {array} model.ObservationDTO
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /weather/{city} [get]
func (controller *ObservationController) FindByCity(c echo.Context) error {
	if c.QueryParams().Has("sort_by") {
		return controller.FindByCityAndSort(c)
	}

	observations, err := controller.useCase.FindByCity(c.Request().Context(), c.Param("city"))
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, observations)
}

// FindByCityAndSort godoc
// @Summary Get sorted city observations
// @Description Observations of a city ordered by temperature
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Param sort_by query string true "Sort field, only temperature is supported"
// @Param order query string false "asc or desc" default(asc)
// @Success 200 {array} model.ObservationDTO
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /weather/{city}/ [get]
func (controller *ObservationController) FindByCityAndSort(c echo.Context) error {
	var query SortQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return controller.badRequest(c, msg.GetMessage("app.error.invalid-body"))
	}

	observations, err := controller.useCase.FindByCityAndSort(c.Request().Context(), c.Param("city"), query.SortBy, query.Order)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, observations)
}

// Create godoc
// @Summary Create observation
// @Description Stores a new observation; the city and date pair must not exist yet
// @Tags weather
// @Accept json
// @Produce json
// @Param city path string true "City name"
// @Param observation body model.ObservationDTO true "Observation"
// @Success 201 {object} model.ObservationDTO
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /weather/{city} [post]
func (controller *ObservationController) Create(c echo.Context) error {
	dto, err := controller.bindObservation(c)
	if err != nil {
		return controller.handleError(c, err)
	}

	created, _, err := controller.useCase.Create(c.Request().Context(), c.Param("city"), dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update observation
// @Description Overwrites temperature and description of the observation at the given date
// @Tags weather
// @Accept json
// @Produce json
// @Param city path string true "City name"
// @Param observation body model.ObservationDTO true "Observation"
// @Success 200 {object} model.ObservationDTO
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /weather/{city} [put]
func (controller *ObservationController) Update(c echo.Context) error {
	dto, err := controller.bindObservation(c)
	if err != nil {
		return controller.handleError(c, err)
	}

	updated, _, err := controller.useCase.Update(c.Request().Context(), c.Param("city"), dto)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteByCity godoc
// @Summary Delete city observations
// @Description Removes every observation of a city
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /weather/{city} [delete]
func (controller *ObservationController) DeleteByCity(c echo.Context) error {
	response, err := controller.useCase.DeleteByCity(c.Request().Context(), c.Param("city"))
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// FindByCityAndDateRange godoc
// @Summary Get city history
// @Description Observations of a city between start_date and the end of end_date's day
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} model.ObservationDTO
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /weather/{city}/history [get]
func (controller *ObservationController) FindByCityAndDateRange(c echo.Context) error {
	var query HistoryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return controller.badRequest(c, msg.GetMessage("app.error.invalid-body"))
	}
	if err := c.Validate(&query); err != nil {
		return controller.handleError(c, err)
	}

	start, err := parseOptionalDate(query.StartDate)
	if err != nil {
		return controller.handleError(c, err)
	}
	end, err := parseOptionalDate(query.EndDate)
	if err != nil {
		return controller.handleError(c, err)
	}

	observations, err := controller.useCase.FindByCityAndDateRange(c.Request().Context(), c.Param("city"), start, end)
	if err != nil {
		return controller.handleError(c, err)
	}
	return c.JSON(http.StatusOK, observations)
}

// GetForecast godoc
// @Summary Get city forecast
// @Description Average temperature forecast from the provider. A mock observation is returned with status DEGRADED when the provider can not be used.
// @Tags weather
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} model.ForecastResult
// @Failure 400 {object} model.ErrorResponse
// @Router /weather/{city}/forecast [get]
func (controller *ObservationController) GetForecast(c echo.Context) error {
	city := c.Param("city")
	if err := validation.ValidateCityName(city); err != nil {
		return controller.handleError(c, err)
	}

	result := controller.useCase.GetForecast(c.Request().Context(), city, controller.provider.URL, controller.provider.Key)
	metrics.RecordForecast(string(result.Status))
	return c.JSON(http.StatusOK, result)
}

// MissingCity godoc
// @Summary Missing city
// @Description Every weather operation needs a city in the path
// @Tags weather
// @Produce json
// @Failure 400 {object} model.ErrorResponse
// @Router /weather/ [get]
func (controller *ObservationController) MissingCity(c echo.Context) error {
	return controller.badRequest(c, msg.GetMessage("validation.path.city-missing"))
}

func (controller *ObservationController) bindObservation(c echo.Context) (model.ObservationDTO, error) {
	var dto model.ObservationDTO
	if c.Request().ContentLength == 0 {
		return dto, apperr.Validation(msg.GetMessage("validation.observation.empty"))
	}
	if err := c.Bind(&dto); err != nil {
		return dto, apperr.Validation(msg.GetMessage("app.error.invalid-body"))
	}
	return dto, nil
}

func (controller *ObservationController) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: message})
}

// handleError maps domain errors to status codes. Unknown errors are logged and hidden behind a generic message.
func (controller *ObservationController) handleError(c echo.Context, err error) error {
	switch {
	case apperr.IsValidation(err):
		return controller.badRequest(c, err.Error())
	case apperr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
	default:
		log.Error("Request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("app.error.internal")})
	}
}

func parseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	date, err := dateutils.ParseDate(value)
	if err != nil {
		return nil, apperr.Validation(msg.GetMessage("app.error.invalid-date", value))
	}
	return &date, nil
}
