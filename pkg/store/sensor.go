package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/models"
)

type sensorRepo struct {
	db *db.DB
}

func (r *sensorRepo) FindByIdentifier(sensorID string) (*models.Sensor, error) {
	var sensor models.Sensor
	err := r.db.Conn.First(&sensor, "sensor_id = ?", sensorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorRepo) FindForUser(userID, sensorID string) (*models.Sensor, error) {
	var sensor models.Sensor
	err := r.db.Conn.First(&sensor, "user_id = ? AND sensor_id = ?", userID, sensorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorRepo) FindByID(id string) (*models.Sensor, error) {
	var sensor models.Sensor
	err := r.db.Conn.First(&sensor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorRepo) FindAnyRegistered(sensorIDs []string) ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := r.db.Conn.Where("sensor_id IN ?", sensorIDs).Find(&sensors).Error
	return sensors, err
}

func (r *sensorRepo) ListUnassigned(userID, deviceID string) ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := r.db.Conn.
		Where("user_id = ? AND device_id = ? AND status = ?", userID, deviceID, models.SensorStatusUnassigned).
		Find(&sensors).Error
	return sensors, err
}

func (r *sensorRepo) Create(sensor *models.Sensor) error {
	if sensor.ID == "" {
		sensor.ID = uuid.NewString()
	}
	if sensor.Status == "" {
		sensor.Status = models.SensorStatusUnassigned
	}
	return r.db.Conn.Create(sensor).Error
}
