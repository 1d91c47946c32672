package observation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"weather-data-api/internal/domain/apperr"
	"weather-data-api/internal/domain/gateway/api"
	"weather-data-api/internal/domain/gateway/db"
	"weather-data-api/internal/domain/gateway/queue"
	"weather-data-api/internal/domain/mapper"
	"weather-data-api/internal/domain/model"
	"weather-data-api/internal/domain/validation"
	"weather-data-api/pkg/log"
	"weather-data-api/pkg/msg"
	"weather-data-api/pkg/util/dateutils"
)

const SortByTemperature = "temperature"

var (
	// ErrForecastDegraded is returned by ImportForecast when only a mock forecast was available
	ErrForecastDegraded = errors.New("forecast degraded")
	// ErrQueueNotConfigured is returned by EnqueueForecastImports without a queue sender
	ErrQueueNotConfigured = errors.New("forecast import queue not configured")
)

// Config holds the forecast provider and import queue settings
type Config struct {
	ForecastURL string
	ForecastKey string
	ImportQueue string
	BatchSize   int
}

type observationUseCase struct {
	config          Config
	dbGateway       db.ObservationGateway
	forecastGateway api.ForecastGateway
	queueSender     queue.Sender
	now             func() time.Time
}

// NewObservationUseCase wires the service. queueSender may be nil when imports are disabled.
func NewObservationUseCase(config Config, dbGateway db.ObservationGateway, forecastGateway api.ForecastGateway, queueSender queue.Sender) UseCase {
	if config.BatchSize <= 0 || config.BatchSize > 10 {
		config.BatchSize = 10
	}

	return &observationUseCase{
		config:          config,
		dbGateway:       dbGateway,
		forecastGateway: forecastGateway,
		queueSender:     queueSender,
		now:             time.Now,
	}
}

// ListCities returns the distinct cities with stored observations, in first seen order
func (uc *observationUseCase) ListCities(ctx context.Context) (model.CitiesResponse, error) {
	observations, err := uc.dbGateway.FindAll(ctx)
	if err != nil {
		return model.CitiesResponse{}, fmt.Errorf("failed to list observations: %w", err)
	}

	seen := make(map[string]struct{}, len(observations))
	cities := make([]string, 0)
	for _, o := range observations {
		if _, ok := seen[o.City]; ok {
			continue
		}
		seen[o.City] = struct{}{}
		cities = append(cities, o.City)
	}

	return model.CitiesResponse{Cities: cities}, nil
}

// FindByCity returns every observation of a city
func (uc *observationUseCase) FindByCity(ctx context.Context, city string) ([]model.ObservationDTO, error) {
	if err := validation.ValidateCityName(city); err != nil {
		return nil, err
	}

	observations, err := uc.dbGateway.FindByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to find observations of %s: %w", city, err)
	}
	if len(observations) == 0 {
		return nil, apperr.NotFound(msg.GetMessage("observation.error.city-not-found", city))
	}

	return mapper.ToDTOs(observations), nil
}

// Create stores a new observation for city; the (city, date) key must be free
func (uc *observationUseCase) Create(ctx context.Context, city string, dto model.ObservationDTO) (model.ObservationDTO, model.Outcome, error) {
	dto.City = city
	if err := validation.ValidateObservation(&dto); err != nil {
		return model.ObservationDTO{}, "", err
	}

	existing, err := uc.dbGateway.FindByCityAndDate(ctx, city, dto.Date)
	if err != nil {
		return model.ObservationDTO{}, "", fmt.Errorf("failed to find observation of %s: %w", city, err)
	}
	if existing != nil {
		return model.ObservationDTO{}, "", apperr.Validation(msg.GetMessage("observation.error.already-exists"))
	}

	saved, err := uc.dbGateway.Save(ctx, mapper.ToEntity(dto))
	if errors.Is(err, db.ErrDuplicateObservation) {
		return model.ObservationDTO{}, "", apperr.Validation(msg.GetMessage("observation.error.already-exists"))
	}
	if err != nil {
		return model.ObservationDTO{}, "", fmt.Errorf("failed to save observation of %s: %w", city, err)
	}

	log.Info("Observation created", zap.String("city", saved.City), zap.Time("date", saved.Date))
	return mapper.ToDTO(*saved), model.OutcomeCreated, nil
}

// Update overwrites temperature and description; city and date of the stored observation are kept
func (uc *observationUseCase) Update(ctx context.Context, city string, dto model.ObservationDTO) (model.ObservationDTO, model.Outcome, error) {
	dto.City = city
	if err := validation.ValidateObservation(&dto); err != nil {
		return model.ObservationDTO{}, "", err
	}

	existing, err := uc.dbGateway.FindByCityAndDate(ctx, city, dto.Date)
	if err != nil {
		return model.ObservationDTO{}, "", fmt.Errorf("failed to find observation of %s: %w", city, err)
	}
	if existing == nil {
		return model.ObservationDTO{}, "", apperr.Validation(msg.GetMessage("observation.error.not-found"))
	}

	existing.Temperature = dto.Temperature
	existing.Description = dto.Description

	saved, err := uc.dbGateway.Save(ctx, *existing)
	if errors.Is(err, db.ErrDuplicateObservation) {
		return model.ObservationDTO{}, "", apperr.Validation(msg.GetMessage("observation.error.already-exists"))
	}
	if err != nil {
		return model.ObservationDTO{}, "", fmt.Errorf("failed to update observation of %s: %w", city, err)
	}

	log.Info("Observation updated", zap.String("city", saved.City), zap.Time("date", saved.Date))
	return mapper.ToDTO(*saved), model.OutcomeUpdated, nil
}

// DeleteByCity removes every observation of a city
func (uc *observationUseCase) DeleteByCity(ctx context.Context, city string) (model.MessageResponse, error) {
	if err := validation.ValidateCityName(city); err != nil {
		return model.MessageResponse{}, err
	}

	deleted, err := uc.dbGateway.DeleteByCity(ctx, city)
	if err != nil {
		return model.MessageResponse{}, fmt.Errorf("failed to delete observations of %s: %w", city, err)
	}
	if deleted == 0 {
		return model.MessageResponse{}, apperr.NotFound(msg.GetMessage("observation.error.delete-not-found", city))
	}

	log.Info("Observations deleted", zap.String("city", city), zap.Int64("count", deleted))
	return model.MessageResponse{Message: msg.GetMessage("observation.deleted", city)}, nil
}

// FindByCityAndDateRange returns the observations between start and the end of end's day
func (uc *observationUseCase) FindByCityAndDateRange(ctx context.Context, city string, start, end *time.Time) ([]model.ObservationDTO, error) {
	if err := validation.ValidateCityName(city); err != nil {
		return nil, err
	}
	if err := validation.ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	observations, err := uc.dbGateway.FindByCityAndDateBetween(ctx, city, *start, dateutils.EndOfDay(*end))
	if err != nil {
		return nil, fmt.Errorf("failed to find observations of %s in range: %w", city, err)
	}
	if len(observations) == 0 {
		return nil, apperr.NotFound(msg.GetMessage("observation.error.range-not-found", city))
	}

	return mapper.ToDTOs(observations), nil
}

// FindByCityAndSort returns the observations of a city ordered by temperature, ascending unless order is "desc"
func (uc *observationUseCase) FindByCityAndSort(ctx context.Context, city, sortBy, order string) ([]model.ObservationDTO, error) {
	if sortBy != SortByTemperature {
		return nil, apperr.Validation(msg.GetMessage("validation.sort.invalid"))
	}

	dtos, err := uc.FindByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(dtos, func(i, j int) bool {
		return dtos[i].Temperature < dtos[j].Temperature
	})
	if strings.EqualFold(order, "desc") {
		slices.Reverse(dtos)
	}

	return dtos, nil
}

// GetForecast never fails: any provider or conversion problem yields a degraded mock result
func (uc *observationUseCase) GetForecast(ctx context.Context, city, providerURL, providerKey string) model.ForecastResult {
	response, err := uc.forecastGateway.GetForecast(ctx, providerURL, providerKey, city)
	if err != nil {
		return uc.degraded(city, err.Error())
	}
	if response == nil {
		return uc.degraded(city, msg.GetMessage("forecast.error.no-response"))
	}

	dto, err := mapper.MapForecastResponse(response, city)
	if err != nil {
		return uc.degraded(city, err.Error())
	}

	return model.ForecastResult{Status: model.ForecastLive, Observation: dto}
}

func (uc *observationUseCase) degraded(city, reason string) model.ForecastResult {
	log.Warn(msg.GetMessage("forecast.error.degraded", city, reason),
		zap.String("city", city),
		zap.String("reason", reason))

	return model.ForecastResult{
		Status:      model.ForecastDegraded,
		Observation: mapper.MockObservation(city, uc.now()),
		Reason:      reason,
	}
}

// ImportForecast stores a live forecast under the requested city name. Degraded forecasts are not stored.
func (uc *observationUseCase) ImportForecast(ctx context.Context, city string) (model.ObservationDTO, model.Outcome, error) {
	if err := validation.ValidateCityName(city); err != nil {
		return model.ObservationDTO{}, "", err
	}

	result := uc.GetForecast(ctx, city, uc.config.ForecastURL, uc.config.ForecastKey)
	if result.IsDegraded() {
		return model.ObservationDTO{}, "", fmt.Errorf("%w: %s", ErrForecastDegraded, result.Reason)
	}

	dto := result.Observation
	existing, err := uc.dbGateway.FindByCityAndDate(ctx, city, dto.Date)
	if err != nil {
		return model.ObservationDTO{}, "", fmt.Errorf("failed to find observation of %s: %w", city, err)
	}
	if existing != nil {
		return uc.Update(ctx, city, dto)
	}
	return uc.Create(ctx, city, dto)
}

// EnqueueForecastImports sends one import request per known city, in batches
func (uc *observationUseCase) EnqueueForecastImports(ctx context.Context, requestID string) error {
	if uc.queueSender == nil {
		return ErrQueueNotConfigured
	}

	cities, err := uc.ListCities(ctx)
	if err != nil {
		return err
	}

	log.Info("Starting forecast import enqueue",
		zap.String("request_id", requestID),
		zap.Int("cities", len(cities.Cities)))

	totalEnqueued := 0
	totalFailed := 0
	for batch := range slices.Chunk(cities.Cities, uc.config.BatchSize) {
		messages := make([]queue.BatchMessage, len(batch))
		for i, city := range batch {
			messages[i] = queue.BatchMessage{
				MessageID: fmt.Sprintf("city-%d", i),
				Body:      model.ForecastImportMessage{City: city, RequestID: requestID},
			}
		}

		result, err := uc.queueSender.SendMessageBatch(ctx, uc.config.ImportQueue, messages)
		if err != nil {
			log.Warn("Failed to send batch",
				zap.String("request_id", requestID),
				zap.Strings("cities", batch),
				zap.Error(err))
			totalFailed += len(batch)
			continue
		}

		for _, failedID := range result.Failed {
			for i, m := range messages {
				if m.MessageID == failedID {
					log.Warn("Failed to enqueue city",
						zap.String("request_id", requestID),
						zap.String("city", batch[i]))
					break
				}
			}
		}
		totalEnqueued += len(result.Successful)
		totalFailed += len(result.Failed)
	}

	log.Info("Completed forecast import enqueue",
		zap.String("request_id", requestID),
		zap.Int("total_enqueued", totalEnqueued),
		zap.Int("total_failed", totalFailed))
	return nil
}
