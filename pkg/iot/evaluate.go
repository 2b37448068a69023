package iot

import (
	"fmt"

	"go.uber.org/zap"
	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/models"
)

// thresholdViolated uses strict inequality in both directions; equality never
// triggers.
func thresholdViolated(t *models.Threshold, value float64) bool {
	switch t.Condition {
	case models.ConditionAbove:
		return value > t.Threshold
	case models.ConditionBelow:
		return value < t.Threshold
	}
	return false
}

func (i *IOT) evaluateMetric(sensor *models.Sensor, metric models.MetricType, value float64) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEvaluate),
	)

	thresholds, err := i.Store.Thresholds.ListActive(sensor.ID, metric)
	if err != nil {
		return err
	}

	// Every active threshold is evaluated; no early exit on first violation.
	var violated []models.Threshold
	for _, threshold := range thresholds {
		if thresholdViolated(&threshold, value) {
			violated = append(violated, threshold)
		}
	}

	if len(violated) == 0 {
		return nil
	}

	logger.Info("Thresholds violated",
		zap.String("sensor_id", sensor.SensorID),
		zap.String("metric", string(metric)),
		zap.Float64("value", value),
		zap.Int("violated", len(violated)))

	if i.Dispatch == nil {
		return fmt.Errorf("dispatch service not available")
	}

	return i.Dispatch.DispatchAlerts(sensor, metric, value, violated)
}

type IEvaluateImpl struct {
	iot *IOT
}

func (ie *IEvaluateImpl) EvaluateMetric(sensor *models.Sensor, metric models.MetricType, value float64) error {
	return ie.iot.evaluateMetric(sensor, metric, value)
}

func (i *IOT) GetIEvaluate() IEvaluate {
	return &IEvaluateImpl{iot: i}
}
