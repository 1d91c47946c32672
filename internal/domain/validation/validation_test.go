package validation

import (
	"testing"
	"time"

	_ "weather-data-api/configs"
	"weather-data-api/internal/domain/apperr"
	"weather-data-api/internal/domain/model"
)

// TestValidateCityName verifies that empty names and "null" in any case are rejected.
func TestValidateCityName(t *testing.T) {
	tests := []struct {
		name    string
		city    string
		wantErr bool
	}{
		{"regular city", "Pune", false},
		{"case preserved", "new york", false},
		{"empty", "", true},
		{"null lower", "null", true},
		{"null upper", "NULL", true},
		{"null mixed", "NuLl", true},
		{"contains null", "nullville", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCityName(tc.city)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateCityName(%q) error = %v, wantErr %v", tc.city, err, tc.wantErr)
			}
			if err != nil && !apperr.IsValidation(err) {
				t.Fatalf("error %T is not a ValidationError", err)
			}
		})
	}
}

// TestValidateTemperatureRange verifies the inclusive [-100, 100] bounds.
func TestValidateTemperatureRange(t *testing.T) {
	tests := []struct {
		temperature float64
		wantErr     bool
	}{
		{-100, false},
		{100, false},
		{0, false},
		{-100.01, true},
		{100.01, true},
		{250, true},
	}

	for _, tc := range tests {
		err := ValidateTemperatureRange(tc.temperature)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateTemperatureRange(%v) error = %v, wantErr %v", tc.temperature, err, tc.wantErr)
		}
	}
}

// TestValidateObservation verifies the nil check and the city, temperature, date order.
func TestValidateObservation(t *testing.T) {
	if err := ValidateObservation(nil); err == nil || err.Error() != "Weather data must not be null" {
		t.Fatalf("ValidateObservation(nil) = %v", err)
	}

	both := &model.ObservationDTO{City: "null", Temperature: 500}
	err := ValidateObservation(both)
	if err == nil || err.Error() != "City name must not be null or empty" {
		t.Fatalf("expected the city error first, got %v", err)
	}

	hot := &model.ObservationDTO{City: "Pune", Temperature: 101}
	err = ValidateObservation(hot)
	if err == nil || err.Error() != "Temperature must be between -100 and 100" {
		t.Fatalf("expected the temperature error, got %v", err)
	}

	undated := &model.ObservationDTO{City: "Pune", Temperature: 30}
	err = ValidateObservation(undated)
	if err == nil || err.Error() != "Date must not be null" {
		t.Fatalf("expected the date error, got %v", err)
	}
	if !apperr.IsValidation(err) {
		t.Fatalf("expected a ValidationError, got %T", err)
	}

	hotUndated := &model.ObservationDTO{City: "Pune", Temperature: 101}
	err = ValidateObservation(hotUndated)
	if err == nil || err.Error() != "Temperature must be between -100 and 100" {
		t.Fatalf("expected the temperature error before the date error, got %v", err)
	}

	ok := &model.ObservationDTO{City: "Pune", Temperature: 30, Date: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)}
	if err := ValidateObservation(ok); err != nil {
		t.Fatalf("ValidateObservation(valid) = %v", err)
	}
}

// TestValidateDateRange verifies absent bounds and ordering.
func TestValidateDateRange(t *testing.T) {
	start := time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 22, 0, 0, 0, 0, time.UTC)
	zero := time.Time{}

	tests := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		wantErr bool
	}{
		{"ordered", &start, &end, false},
		{"same day", &start, &start, false},
		{"missing start", nil, &end, true},
		{"missing end", &start, nil, true},
		{"zero end", &start, &zero, true},
		{"reversed", &end, &start, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDateRange(tc.start, tc.end)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateDateRange error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !apperr.IsValidation(err) {
				t.Fatalf("error %T is not a ValidationError", err)
			}
		})
	}
}
