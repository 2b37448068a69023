package store

import (
	"errors"

	"gorm.io/gorm"
	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/models"
)

type alertRepo struct {
	db *db.DB
}

func (r *alertRepo) Create(record *models.AlertRecord) error {
	return r.db.Conn.Create(record).Error
}

func (r *alertRepo) Latest(userID, sensorRef string) (*models.AlertRecord, error) {
	var record models.AlertRecord
	err := r.db.Conn.
		Where("user_id = ? AND sensor_id = ?", userID, sensorRef).
		Order("sent_at desc").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *alertRepo) ListBySensor(sensorRef string) ([]models.AlertRecord, error) {
	var records []models.AlertRecord
	err := r.db.Conn.
		Where("sensor_id = ?", sensorRef).
		Order("sent_at desc").
		Find(&records).Error
	return records, err
}
