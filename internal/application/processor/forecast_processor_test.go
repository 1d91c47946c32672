package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	_ "weather-data-api/configs"
	"weather-data-api/internal/domain/apperr"
	"weather-data-api/internal/domain/model"
	"weather-data-api/internal/domain/usecase/observation"
)

type fakeUseCase struct {
	observation.UseCase

	cities []string
	err    error
}

func (f *fakeUseCase) ImportForecast(_ context.Context, city string) (model.ObservationDTO, model.Outcome, error) {
	f.cities = append(f.cities, city)
	if f.err != nil {
		return model.ObservationDTO{}, "", f.err
	}
	return model.ObservationDTO{City: city, Temperature: 21.5, Date: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)}, model.OutcomeCreated, nil
}

func message(body string) types.Message {
	return types.Message{MessageId: aws.String("1"), Body: aws.String(body)}
}

func TestForecastProcessorHandleMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       *string
		importErr  error
		wantErr    bool
		wantCities int
	}{
		{name: "imported", body: aws.String(`{"city":"Pune","requestId":"r-1"}`), wantCities: 1},
		{name: "degraded is acknowledged", body: aws.String(`{"city":"Pune"}`), importErr: fmt.Errorf("%w: timeout", observation.ErrForecastDegraded), wantCities: 1},
		{name: "invalid city is acknowledged", body: aws.String(`{"city":""}`), importErr: apperr.Validation("City name must not be null or empty"), wantCities: 1},
		{name: "store fault is redelivered", body: aws.String(`{"city":"Pune"}`), importErr: errors.New("connection reset"), wantErr: true, wantCities: 1},
		{name: "malformed body", body: aws.String(`{city`), wantErr: true},
		{name: "missing body", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useCase := &fakeUseCase{err: tc.importErr}
			msg := message("")
			msg.Body = tc.body

			err := NewForecastProcessor(useCase).HandleMessage(context.Background(), msg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("HandleMessage() error = %v, wantErr %v", err, tc.wantErr)
			}
			if len(useCase.cities) != tc.wantCities {
				t.Fatalf("expected %d imports, got %v", tc.wantCities, useCase.cities)
			}
		})
	}
}
