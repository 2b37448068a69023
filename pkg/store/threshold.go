package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/models"
)

type thresholdRepo struct {
	db *db.DB
}

func (r *thresholdRepo) ListActive(sensorRef string, metric models.MetricType) ([]models.Threshold, error) {
	var thresholds []models.Threshold
	err := r.db.Conn.
		Where("sensor_id = ? AND type = ? AND is_active = ?", sensorRef, metric, true).
		Find(&thresholds).Error
	return thresholds, err
}

func (r *thresholdRepo) ListBySensor(sensorRef string) ([]models.Threshold, error) {
	var thresholds []models.Threshold
	err := r.db.Conn.
		Where("sensor_id = ?", sensorRef).
		Find(&thresholds).Error
	return thresholds, err
}

func (r *thresholdRepo) Create(threshold *models.Threshold) error {
	if threshold.ID == "" {
		threshold.ID = uuid.NewString()
	}
	return r.db.Conn.Create(threshold).Error
}

func (r *thresholdRepo) Toggle(userID, thresholdID string) (*models.Threshold, error) {
	var threshold models.Threshold
	err := r.db.Conn.First(&threshold, "id = ? AND user_id = ?", thresholdID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	threshold.IsActive = !threshold.IsActive
	if err := r.db.Conn.Model(&threshold).Update("is_active", threshold.IsActive).Error; err != nil {
		return nil, err
	}
	return &threshold, nil
}

func (r *thresholdRepo) Delete(userID, thresholdID string) error {
	return r.db.Conn.
		Where("id = ? AND user_id = ?", thresholdID, userID).
		Delete(&models.Threshold{}).Error
}
