package iot

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/models"
)

// AlertCooldown suppresses repeat notifications per (user, sensor). The key is
// the pair, not the individual threshold or metric: a second unrelated
// violation on the same sensor inside the window is suppressed too.
const AlertCooldown = 4 * time.Hour

func (i *IOT) dispatchAlerts(sensor *models.Sensor, metric models.MetricType, value float64, violated []models.Threshold) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDispatch),
	)

	latest, err := i.Store.Alerts.Latest(sensor.UserID, sensor.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	if latest != nil && now.Sub(latest.SentAt) < AlertCooldown {
		logger.Info("Alert suppressed by cooldown",
			zap.String("sensor_id", sensor.SensorID),
			zap.Time("last_sent_at", latest.SentAt))
		return nil
	}

	user, err := i.Store.Users.FindByID(sensor.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		logger.Warn("Owner not found for sensor, alert not sent", zap.String("sensor_id", sensor.SensorID))
		return nil
	}

	if i.Notifier == nil {
		return fmt.Errorf("notifier not available")
	}

	subject := fmt.Sprintf("Sensor Alert: %s", sensor.DisplayName())
	body := composeAlertBody(user, sensor, metric, value, violated, now)

	// No record is written on send failure, so the next violating reading
	// inside the window will attempt to alert again.
	if err := i.Notifier.Send(user.Email, subject, body); err != nil {
		logger.Error("Alert notification failed, nothing recorded",
			zap.String("sensor_id", sensor.SensorID), zap.Error(err))
		return err
	}

	for _, threshold := range violated {
		record := models.AlertRecord{
			UserID:         sensor.UserID,
			SensorID:       sensor.ID,
			ThresholdValue: threshold.Threshold,
			ActualValue:    value,
			Condition:      threshold.Condition,
			SentAt:         now,
		}

		if err := i.Store.Alerts.Create(&record); err != nil {
			logger.Error("Failed to record sent alert", zap.Error(err))
			return err
		}

		logger.Info("Alert recorded", zap.Reflect("alert", record))
	}

	return nil
}

func composeAlertBody(user *models.User, sensor *models.Sensor, metric models.MetricType, value float64, violated []models.Threshold, at time.Time) string {
	lines := common.Mapper(violated, func(t models.Threshold) string {
		return fmt.Sprintf("- threshold %.2f, condition %s", t.Threshold, t.Condition)
	})

	return fmt.Sprintf(
		"Hello %s,\n\nYour sensor %q has triggered an alert:\n- Metric: %s\n- Current value: %.2f\n\nViolated thresholds:\n%s\n\nThis alert was triggered at %s\n",
		user.Name,
		sensor.DisplayName(),
		metric,
		value,
		strings.Join(lines, "\n"),
		at.Format(time.RFC1123),
	)
}

func (i *IOT) getSensorAlerts(sensorRef string) ([]models.AlertRecord, error) {
	return i.Store.Alerts.ListBySensor(sensorRef)
}

type IDispatchImpl struct {
	iot *IOT
}

func (id *IDispatchImpl) DispatchAlerts(sensor *models.Sensor, metric models.MetricType, value float64, violated []models.Threshold) error {
	return id.iot.dispatchAlerts(sensor, metric, value, violated)
}

func (id *IDispatchImpl) GetSensorAlerts(sensorRef string) ([]models.AlertRecord, error) {
	return id.iot.getSensorAlerts(sensorRef)
}

func (i *IOT) GetIDispatch() IDispatch {
	return &IDispatchImpl{iot: i}
}
