package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"weather-data-api/internal/domain/apperr"
	"weather-data-api/internal/domain/model"
	"weather-data-api/internal/domain/usecase/observation"
	"weather-data-api/internal/infra/metrics"
	"weather-data-api/pkg/log"
	"weather-data-api/pkg/sqs"
)

type ForecastProcessor struct {
	observationUseCase observation.UseCase
}

var _ sqs.Handler = (*ForecastProcessor)(nil)

func NewForecastProcessor(observationUseCase observation.UseCase) *ForecastProcessor {
	return &ForecastProcessor{
		observationUseCase: observationUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface.
// Degraded forecasts and invalid cities are acknowledged; store faults are returned so the message is redelivered.
func (p *ForecastProcessor) HandleMessage(ctx context.Context, msg types.Message) error {
	if msg.Body == nil {
		return fmt.Errorf("received message without body")
	}

	var request model.ForecastImportMessage
	if err := json.Unmarshal([]byte(*msg.Body), &request); err != nil {
		metrics.RecordImport("invalid")
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	fields := []zap.Field{
		zap.String("city", request.City),
		zap.String("request_id", request.RequestID),
	}

	dto, outcome, err := p.observationUseCase.ImportForecast(ctx, request.City)
	switch {
	case errors.Is(err, observation.ErrForecastDegraded):
		metrics.RecordImport("degraded")
		log.Warn("Forecast import skipped", append(fields, zap.Error(err))...)
		return nil
	case apperr.IsValidation(err):
		metrics.RecordImport("invalid")
		log.Warn("Forecast import rejected", append(fields, zap.Error(err))...)
		return nil
	case err != nil:
		metrics.RecordImport("failed")
		return fmt.Errorf("failed to import forecast for %s: %w", request.City, err)
	}

	metrics.RecordImport(string(outcome))
	log.Info("Forecast imported", append(fields, zap.String("outcome", string(outcome)), zap.Time("date", dto.Date))...)
	return nil
}
