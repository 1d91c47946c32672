package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-data-api/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth())
}

// CheckHealth godoc
// @Summary Health check
// @Description Database, queue and redis status. Components that are not configured report UNKNOWN.
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Overall status is DOWN when a configured component is DOWN"
// @Router /health [get]
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth(c.Request().Context())

		return c.JSON(http.StatusOK, healthResponse)
	}
}
