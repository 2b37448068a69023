package mqtt

import (
	"encoding/json"
	"strings"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/iot"
	"sensareal.xyz/telemetry-service/pkg/models"
)

const (
	TopicSensorReadings  = "sensor/+"
	TopicDeviceStatus    = "device/+/status"
	TopicDeviceHeartbeat = "device/+/heartbeat"
)

func DefaultSubscriptions() []string {
	return []string{TopicSensorReadings, TopicDeviceStatus, TopicDeviceHeartbeat}
}

type telemetryPayload struct {
	Temperature    float64  `json:"temperature"`
	Humidity       float64  `json:"humidity"`
	BatteryLevel   *float64 `json:"batteryLevel"`
	SignalStrength *float64 `json:"signalStrength"`
}

var telemetrySchema = z.Struct(z.Shape{
	"temperature":    z.Float64().Required().GTE(-273.15),
	"humidity":       z.Float64().Required().GTE(0).LTE(100),
	"batteryLevel":   z.Ptr(z.Float64().GTE(0).LTE(100)),
	"signalStrength": z.Ptr(z.Float64().GTE(0).LTE(100)),
})

type deviceStatusPayload struct {
	Status         string   `json:"status"`
	BatteryLevel   *float64 `json:"batteryLevel"`
	SignalStrength *float64 `json:"signalStrength"`
}

var deviceStatusSchema = z.Struct(z.Shape{
	"status":         z.String().Required().OneOf([]string{"ACTIVE", "INACTIVE"}),
	"batteryLevel":   z.Ptr(z.Float64().GTE(0).LTE(100)),
	"signalStrength": z.Ptr(z.Float64().GTE(0).LTE(100)),
})

type heartbeatPayload struct {
	BatteryLevel   *float64 `json:"batteryLevel"`
	SignalStrength *float64 `json:"signalStrength"`
}

var heartbeatSchema = z.Struct(z.Shape{
	"batteryLevel":   z.Ptr(z.Float64().GTE(0).LTE(100)),
	"signalStrength": z.Ptr(z.Float64().GTE(0).LTE(100)),
})

// Router decodes inbound topics and payloads and hands them to the core. It
// is the per-message error boundary: everything that goes wrong here or
// downstream is logged and the message dropped, never propagated to the
// connection.
type Router struct {
	Ingest iot.IIngest
	Device iot.IDevice
}

func (r *Router) HandleMessage(topic string, payload []byte) {
	logger := common.GetLoggerWith(
		common.LoggerNameBroker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRouter),
	)

	parts := strings.Split(topic, "/")
	switch {
	case len(parts) == 2 && parts[0] == "sensor" && parts[1] != "":
		r.handleReading(logger, parts[1], payload)
	case len(parts) == 3 && parts[0] == "device" && parts[2] == "status":
		r.handleDeviceStatus(logger, parts[1], payload)
	case len(parts) == 3 && parts[0] == "device" && parts[2] == "heartbeat":
		r.handleHeartbeat(logger, parts[1], payload)
	default:
		logger.Warn("Unrecognized topic, dropping message", zap.String("topic", topic))
	}
}

func (r *Router) handleReading(logger *zap.Logger, sensorID string, payload []byte) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		logger.Warn("Non-JSON payload, dropping message", zap.String("sensor_id", sensorID), zap.Error(err))
		return
	}

	var decoded telemetryPayload
	if issues := telemetrySchema.Parse(raw, &decoded); issues != nil {
		logger.Warn("Payload failed schema validation, dropping message",
			zap.String("sensor_id", sensorID), zap.Any("issues", issues))
		return
	}

	telemetry := &models.Telemetry{
		Temperature:    decoded.Temperature,
		Humidity:       decoded.Humidity,
		BatteryLevel:   decoded.BatteryLevel,
		SignalStrength: decoded.SignalStrength,
	}

	if err := r.Ingest.HandleReading(sensorID, telemetry); err != nil {
		logger.Error("Reading ingestion failed", zap.String("sensor_id", sensorID), zap.Error(err))
	}
}

func (r *Router) handleDeviceStatus(logger *zap.Logger, deviceID string, payload []byte) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		logger.Warn("Non-JSON payload, dropping message", zap.String("device_id", deviceID), zap.Error(err))
		return
	}

	var decoded deviceStatusPayload
	if issues := deviceStatusSchema.Parse(raw, &decoded); issues != nil {
		logger.Warn("Payload failed schema validation, dropping message",
			zap.String("device_id", deviceID), zap.Any("issues", issues))
		return
	}

	update := &models.DeviceStatusUpdate{
		Status:         models.DeviceStatus(decoded.Status),
		BatteryLevel:   decoded.BatteryLevel,
		SignalStrength: decoded.SignalStrength,
	}

	if err := r.Device.UpdateDeviceStatus(deviceID, update); err != nil {
		logger.Error("Device status update failed", zap.String("device_id", deviceID), zap.Error(err))
	}
}

func (r *Router) handleHeartbeat(logger *zap.Logger, deviceID string, payload []byte) {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		logger.Warn("Non-JSON payload, dropping message", zap.String("device_id", deviceID), zap.Error(err))
		return
	}

	var decoded heartbeatPayload
	if issues := heartbeatSchema.Parse(raw, &decoded); issues != nil {
		logger.Warn("Payload failed schema validation, dropping message",
			zap.String("device_id", deviceID), zap.Any("issues", issues))
		return
	}

	health := &models.DeviceHealth{
		BatteryLevel:   decoded.BatteryLevel,
		SignalStrength: decoded.SignalStrength,
	}

	if err := r.Device.RecordHeartbeat(deviceID, health); err != nil {
		logger.Error("Device heartbeat failed", zap.String("device_id", deviceID), zap.Error(err))
	}
}
