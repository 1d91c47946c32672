package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weather-data-api/internal/domain/entity"
	"weather-data-api/pkg/resource"
)

// DSN builds the postgres connection string from the app.db properties
func DSN() string {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schema := resource.GetString("app.db.schema")
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		host, username, password, database, port, schema)
}

// Open connects with duplicate key translation enabled so unique violations surface as gorm.ErrDuplicatedKey
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates the observations table and its (city, date) unique index
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Observation{})
}
