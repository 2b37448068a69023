package store

import (
	"time"

	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/models"
)

// One repository per entity. The alerting core consumes these interfaces only;
// the gorm implementations below are the single storage binding.

type SensorRepository interface {
	// FindByIdentifier resolves the external identifier a device publishes
	// under. Identifiers are unique per owning user; inbound messages carry no
	// user, so resolution is global.
	FindByIdentifier(sensorID string) (*models.Sensor, error)
	FindForUser(userID, sensorID string) (*models.Sensor, error)
	FindByID(id string) (*models.Sensor, error)
	FindAnyRegistered(sensorIDs []string) ([]models.Sensor, error)
	ListUnassigned(userID, deviceID string) ([]models.Sensor, error)
	Create(sensor *models.Sensor) error
}

type ReadingRepository interface {
	Create(reading *models.Reading) error
	ListBySensor(sensorRef string, limit int) ([]models.Reading, error)
}

type ThresholdRepository interface {
	ListActive(sensorRef string, metric models.MetricType) ([]models.Threshold, error)
	ListBySensor(sensorRef string) ([]models.Threshold, error)
	Create(threshold *models.Threshold) error
	Toggle(userID, thresholdID string) (*models.Threshold, error)
	Delete(userID, thresholdID string) error
}

type AlertRepository interface {
	Create(record *models.AlertRecord) error
	// Latest returns the newest record for the (user, sensor) pair, or nil
	// when the pair has never alerted.
	Latest(userID, sensorRef string) (*models.AlertRecord, error)
	ListBySensor(sensorRef string) ([]models.AlertRecord, error)
}

type DeviceRepository interface {
	FindByDeviceID(deviceID string) (*models.Device, error)
	Create(device *models.Device) error
	UpdateStatus(deviceID string, status models.DeviceStatus, battery, signal *float64) error
	UpdateHeartbeat(deviceID string, at time.Time, battery, signal *float64) error
}

type UserRepository interface {
	FindByID(id string) (*models.User, error)
}

// Store bundles the gorm-backed repositories over one connection.
type Store struct {
	Sensors    SensorRepository
	Readings   ReadingRepository
	Thresholds ThresholdRepository
	Alerts     AlertRepository
	Devices    DeviceRepository
	Users      UserRepository
}

func New(dbInstance *db.DB) *Store {
	return &Store{
		Sensors:    &sensorRepo{db: dbInstance},
		Readings:   &readingRepo{db: dbInstance},
		Thresholds: &thresholdRepo{db: dbInstance},
		Alerts:     &alertRepo{db: dbInstance},
		Devices:    &deviceRepo{db: dbInstance},
		Users:      &userRepo{db: dbInstance},
	}
}
