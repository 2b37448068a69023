package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/models"
)

type deviceRepo struct {
	db *db.DB
}

func (r *deviceRepo) FindByDeviceID(deviceID string) (*models.Device, error) {
	var device models.Device
	err := r.db.Conn.First(&device, "device_id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepo) Create(device *models.Device) error {
	if device.ID == "" {
		device.ID = uuid.NewString()
	}
	if device.Status == "" {
		device.Status = models.DeviceStatusInactive
	}
	return r.db.Conn.Create(device).Error
}

func (r *deviceRepo) UpdateStatus(deviceID string, status models.DeviceStatus, battery, signal *float64) error {
	updates := map[string]any{"status": status}
	if battery != nil {
		updates["battery_level"] = *battery
	}
	if signal != nil {
		updates["signal_strength"] = *signal
	}
	return r.db.Conn.
		Model(&models.Device{}).
		Where("device_id = ?", deviceID).
		Updates(updates).Error
}

func (r *deviceRepo) UpdateHeartbeat(deviceID string, at time.Time, battery, signal *float64) error {
	updates := map[string]any{"last_heartbeat": at}
	if battery != nil {
		updates["battery_level"] = *battery
	}
	if signal != nil {
		updates["signal_strength"] = *signal
	}
	return r.db.Conn.
		Model(&models.Device{}).
		Where("device_id = ?", deviceID).
		Updates(updates).Error
}
