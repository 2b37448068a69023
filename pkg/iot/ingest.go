package iot

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/models"
)

func (i *IOT) handleReading(sensorID string, telemetry *models.Telemetry) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	sensor, err := i.Store.Sensors.FindByIdentifier(sensorID)
	if err != nil {
		return err
	}
	if sensor == nil {
		// at-most-once: unknown sensors lose the reading, no buffering
		logger.Warn("Sensor not found, dropping reading", zap.String("sensor_id", sensorID))
		return nil
	}

	reading := models.Reading{
		SensorID:       sensor.ID,
		UserID:         sensor.UserID,
		Temperature:    telemetry.Temperature,
		Humidity:       telemetry.Humidity,
		BatteryLevel:   telemetry.BatteryLevel,
		SignalStrength: telemetry.SignalStrength,
		Timestamp:      time.Now(),
	}

	// Evaluation runs strictly after the reading is durable.
	if err := i.Store.Readings.Create(&reading); err != nil {
		return err
	}

	logger.Info("Reading persisted", zap.Reflect("reading", reading))

	if i.Evaluate == nil {
		return fmt.Errorf("evaluate service not available")
	}

	// Metrics evaluate independently; a failure on one does not stop the other.
	if err := i.Evaluate.EvaluateMetric(sensor, models.MetricTypeTemperature, telemetry.Temperature); err != nil {
		logger.Error("Temperature evaluation failed", zap.String("sensor_id", sensorID), zap.Error(err))
	}
	if err := i.Evaluate.EvaluateMetric(sensor, models.MetricTypeHumidity, telemetry.Humidity); err != nil {
		logger.Error("Humidity evaluation failed", zap.String("sensor_id", sensorID), zap.Error(err))
	}

	return nil
}

type IIngestImpl struct {
	iot *IOT
}

func (ii *IIngestImpl) HandleReading(sensorID string, telemetry *models.Telemetry) error {
	return ii.iot.handleReading(sensorID, telemetry)
}

func (i *IOT) GetIIngest() IIngest {
	return &IIngestImpl{iot: i}
}
