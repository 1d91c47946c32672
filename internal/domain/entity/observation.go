package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Observation is one stored weather record; (City, Date) identifies it
type Observation struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	City        string    `json:"city" gorm:"type:varchar(255);not null;uniqueIndex:idx_observations_city_date,priority:1"`
	Temperature float64   `json:"temperature" gorm:"type:double precision;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date" gorm:"type:timestamptz;not null;uniqueIndex:idx_observations_city_date,priority:2"`
	CreatedAt   time.Time `json:"createdDate"`
	UpdatedAt   time.Time `json:"updatedDate"`
}

func (Observation) TableName() string {
	return "observations"
}

// BeforeCreate assigns the surrogate key when the caller did not
func (o *Observation) BeforeCreate(_ *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
