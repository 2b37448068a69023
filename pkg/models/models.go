package models

import "time"

type MetricType string

const (
	MetricTypeTemperature MetricType = "temperature"
	MetricTypeHumidity    MetricType = "humidity"
)

type Condition string

const (
	ConditionAbove Condition = "above"
	ConditionBelow Condition = "below"
)

type DeviceStatus string

const (
	DeviceStatusActive   DeviceStatus = "ACTIVE"
	DeviceStatusInactive DeviceStatus = "INACTIVE"
)

type SensorStatus string

const (
	SensorStatusUnassigned SensorStatus = "UNASSIGNED"
	SensorStatusAssigned   SensorStatus = "ASSIGNED"
)

// User rows are owned by the (external) auth surface; this service only reads
// them to resolve notification recipients.
type User struct {
	ID    string `gorm:"primaryKey"`
	Email string `gorm:"index"`
	Name  string
}

type Device struct {
	ID             string `gorm:"primaryKey"`
	DeviceID       string `gorm:"uniqueIndex"`
	Name           string
	Status         DeviceStatus `gorm:"type:varchar(20);check:status IN ('ACTIVE','INACTIVE')"`
	LastHeartbeat  *time.Time
	BatteryLevel   *float64 `gorm:"check:battery_level IS NULL OR (battery_level >= 0 AND battery_level <= 100)"`
	SignalStrength *float64 `gorm:"check:signal_strength IS NULL OR (signal_strength >= 0 AND signal_strength <= 100)"`
	UserID         string   `gorm:"index"`
}

// Sensor.SensorID is the external identifier devices publish under; ID is the
// row key readings and thresholds reference.
type Sensor struct {
	ID       string `gorm:"primaryKey"`
	SensorID string `gorm:"uniqueIndex:idx_user_sensor"`
	Name     string
	Status   SensorStatus `gorm:"type:varchar(20);check:status IN ('UNASSIGNED','ASSIGNED')"`
	DeviceID string       `gorm:"index"`
	UserID   string       `gorm:"uniqueIndex:idx_user_sensor;index"`
}

// DisplayName is what alert notifications call the sensor.
func (s *Sensor) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.SensorID
}

// Reading is append-only; rows are never updated or deleted here.
type Reading struct {
	ID             uint   `gorm:"primaryKey"`
	SensorID       string `gorm:"index"`
	UserID         string
	Temperature    float64
	Humidity       float64
	BatteryLevel   *float64
	SignalStrength *float64
	Timestamp      time.Time
}

type Threshold struct {
	ID        string     `gorm:"primaryKey"`
	SensorID  string     `gorm:"index"`
	UserID    string     `gorm:"index"`
	Type      MetricType `gorm:"type:varchar(20);check:type IN ('temperature','humidity')"`
	Threshold float64
	Condition Condition `gorm:"type:varchar(10);check:condition IN ('above','below')"`
	IsActive  bool
}

// AlertRecord is the sole source of truth for the dispatch cooldown.
type AlertRecord struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         string `gorm:"index:idx_alert_cooldown"`
	SensorID       string `gorm:"index:idx_alert_cooldown"`
	ThresholdValue float64
	ActualValue    float64
	Condition      Condition `gorm:"type:varchar(10)"`
	SentAt         time.Time `gorm:"index:idx_alert_cooldown"`
}

// Telemetry is one decoded sensor payload; optional fields stay nil when the
// device omitted them.
type Telemetry struct {
	Temperature    float64
	Humidity       float64
	BatteryLevel   *float64
	SignalStrength *float64
}

// DeviceStatusUpdate is a decoded device status message.
type DeviceStatusUpdate struct {
	Status         DeviceStatus
	BatteryLevel   *float64
	SignalStrength *float64
}

// DeviceHealth is a decoded heartbeat message.
type DeviceHealth struct {
	BatteryLevel   *float64
	SignalStrength *float64
}
