package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"weather-data-api/internal/domain/entity"
)

const uniqueViolation = pq.ErrorCode("23505")

const observationColumns = `id, city, temperature, description, date, created_at, updated_at`

type SQLCObservationGateway struct {
	DB *sql.DB
}

var _ ObservationGateway = (*SQLCObservationGateway)(nil)

func NewSQLCObservationGateway(db *sql.DB) *SQLCObservationGateway {
	return &SQLCObservationGateway{DB: db}
}

func (gateway *SQLCObservationGateway) FindAll(ctx context.Context) ([]entity.Observation, error) {
	return gateway.query(ctx, `
		SELECT `+observationColumns+`
		FROM observations
		ORDER BY created_at, id`)
}

func (gateway *SQLCObservationGateway) FindByCity(ctx context.Context, city string) ([]entity.Observation, error) {
	return gateway.query(ctx, `
		SELECT `+observationColumns+`
		FROM observations
		WHERE city = $1
		ORDER BY created_at, id`, city)
}

func (gateway *SQLCObservationGateway) FindByCityAndDate(ctx context.Context, city string, date time.Time) (*entity.Observation, error) {
	var o entity.Observation
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT `+observationColumns+`
		FROM observations
		WHERE city = $1 AND date = $2`, city, date.UTC()).
		Scan(&o.ID, &o.City, &o.Temperature, &o.Description, &o.Date, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find observation of %s: %w", city, err)
	}
	o.Date = o.Date.UTC()
	return &o, nil
}

func (gateway *SQLCObservationGateway) FindByCityAndDateBetween(ctx context.Context, city string, start, end time.Time) ([]entity.Observation, error) {
	return gateway.query(ctx, `
		SELECT `+observationColumns+`
		FROM observations
		WHERE city = $1 AND date BETWEEN $2 AND $3
		ORDER BY created_at, id`, city, start.UTC(), end.UTC())
}

// Save upserts by id. A clash on (city, date) surfaces as ErrDuplicateObservation.
func (gateway *SQLCObservationGateway) Save(ctx context.Context, observation entity.Observation) (*entity.Observation, error) {
	now := time.Now().UTC()
	if observation.ID == "" {
		observation.ID = uuid.New().String()
	}
	if observation.CreatedAt.IsZero() {
		observation.CreatedAt = now
	}
	observation.UpdatedAt = now
	observation.Date = observation.Date.UTC()

	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO observations (`+observationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET city = EXCLUDED.city, temperature = EXCLUDED.temperature, description = EXCLUDED.description,
			date = EXCLUDED.date, updated_at = EXCLUDED.updated_at`,
		observation.ID, observation.City, observation.Temperature, observation.Description,
		observation.Date, observation.CreatedAt, observation.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateObservation
	}
	if err != nil {
		return nil, fmt.Errorf("save observation of %s: %w", observation.City, err)
	}

	return &observation, nil
}

func (gateway *SQLCObservationGateway) DeleteByCity(ctx context.Context, city string) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM observations WHERE city = $1`, city)
	if err != nil {
		return 0, fmt.Errorf("delete observations of %s: %w", city, err)
	}
	return result.RowsAffected()
}

func (gateway *SQLCObservationGateway) query(ctx context.Context, query string, args ...any) (observations []entity.Observation, err error) {
	rows, err := gateway.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	observations = make([]entity.Observation, 0)
	for rows.Next() {
		var o entity.Observation
		if err := rows.Scan(&o.ID, &o.City, &o.Temperature, &o.Description, &o.Date, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		o.Date = o.Date.UTC()
		observations = append(observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate observations: %w", err)
	}
	return observations, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
