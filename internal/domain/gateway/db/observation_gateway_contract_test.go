package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-data-api/internal/domain/entity"
)

func day(d int) time.Time {
	return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC)
}

func observation(city string, date time.Time, temperature float64) entity.Observation {
	return entity.Observation{City: city, Date: date, Temperature: temperature, Description: "test"}
}

// runObservationGatewayContract exercises the behaviour every ObservationGateway must share.
// The gateway must start empty.
func runObservationGatewayContract(t *testing.T, gateway ObservationGateway) {
	ctx := context.Background()

	t.Run("save assigns an id", func(t *testing.T) {
		saved, err := gateway.Save(ctx, observation("Pune", day(20), 30))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if saved.ID == "" {
			t.Fatal("expected an id to be assigned")
		}
	})

	t.Run("find by city and date", func(t *testing.T) {
		found, err := gateway.FindByCityAndDate(ctx, "Pune", day(20))
		if err != nil {
			t.Fatalf("FindByCityAndDate() error = %v", err)
		}
		if found == nil || found.Temperature != 30 {
			t.Fatalf("unexpected observation %+v", found)
		}

		missing, err := gateway.FindByCityAndDate(ctx, "Pune", day(21))
		if err != nil || missing != nil {
			t.Fatalf("expected nil, nil for an absent key, got %+v, %v", missing, err)
		}

		other, err := gateway.FindByCityAndDate(ctx, "pune", day(20))
		if err != nil || other != nil {
			t.Fatalf("city must match case-sensitively, got %+v, %v", other, err)
		}
	})

	t.Run("duplicate key is rejected", func(t *testing.T) {
		_, err := gateway.Save(ctx, observation("Pune", day(20), 12))
		if !errors.Is(err, ErrDuplicateObservation) {
			t.Fatalf("expected ErrDuplicateObservation, got %v", err)
		}

		all, err := gateway.FindByCity(ctx, "Pune")
		if err != nil {
			t.Fatalf("FindByCity() error = %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("expected a single stored observation, got %d", len(all))
		}
	})

	t.Run("save overwrites by id", func(t *testing.T) {
		existing, err := gateway.FindByCityAndDate(ctx, "Pune", day(20))
		if err != nil || existing == nil {
			t.Fatalf("lookup failed: %+v, %v", existing, err)
		}

		existing.Temperature = 35
		existing.Description = "Hot"
		if _, err := gateway.Save(ctx, *existing); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		updated, err := gateway.FindByCityAndDate(ctx, "Pune", day(20))
		if err != nil || updated == nil {
			t.Fatalf("lookup failed: %+v, %v", updated, err)
		}
		if updated.ID != existing.ID || updated.Temperature != 35 || updated.Description != "Hot" {
			t.Fatalf("unexpected overwrite result %+v", updated)
		}
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		for _, d := range []int{21, 22, 23} {
			if _, err := gateway.Save(ctx, observation("Pune", day(d), float64(d))); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
		}
		end := time.Date(2024, 4, 22, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

		observations, err := gateway.FindByCityAndDateBetween(ctx, "Pune", day(20), end)
		if err != nil {
			t.Fatalf("FindByCityAndDateBetween() error = %v", err)
		}
		if len(observations) != 3 {
			t.Fatalf("expected the 20th to the 22nd, got %d observations", len(observations))
		}
		for _, o := range observations {
			if o.Date.Equal(day(23)) {
				t.Fatal("the 23rd must be excluded")
			}
		}
	})

	t.Run("find all spans cities", func(t *testing.T) {
		if _, err := gateway.Save(ctx, observation("Mumbai", day(20), 33)); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		all, err := gateway.FindAll(ctx)
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(all) != 5 {
			t.Fatalf("expected 5 observations, got %d", len(all))
		}
	})

	t.Run("delete by city", func(t *testing.T) {
		deleted, err := gateway.DeleteByCity(ctx, "Pune")
		if err != nil {
			t.Fatalf("DeleteByCity() error = %v", err)
		}
		if deleted != 4 {
			t.Fatalf("expected 4 deleted, got %d", deleted)
		}

		again, err := gateway.DeleteByCity(ctx, "Pune")
		if err != nil || again != 0 {
			t.Fatalf("expected nothing left to delete, got %d, %v", again, err)
		}

		remaining, err := gateway.FindAll(ctx)
		if err != nil || len(remaining) != 1 || remaining[0].City != "Mumbai" {
			t.Fatalf("unexpected remaining observations %+v, %v", remaining, err)
		}
	})
}
