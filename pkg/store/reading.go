package store

import (
	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/models"
)

type readingRepo struct {
	db *db.DB
}

func (r *readingRepo) Create(reading *models.Reading) error {
	return r.db.Conn.Create(reading).Error
}

func (r *readingRepo) ListBySensor(sensorRef string, limit int) ([]models.Reading, error) {
	var readings []models.Reading
	err := r.db.Conn.
		Where("sensor_id = ?", sensorRef).
		Order("timestamp desc").
		Limit(limit).
		Find(&readings).Error
	return readings, err
}
