package iot

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/models"
	_ "sensareal.xyz/telemetry-service/pkg/testing"
)

func TestHandleReading(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, dbInstance, _, mockEvaluate, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, true, false)
	defer ctrl.Finish()

	_, sensor := seedUserAndSensor(t, dbInstance)

	mockEvaluate.
		EXPECT().
		EvaluateMetric(gomock.Any(), gomock.Eq(models.MetricTypeTemperature), gomock.Eq(31.5)).
		Times(1)
	mockEvaluate.
		EXPECT().
		EvaluateMetric(gomock.Any(), gomock.Eq(models.MetricTypeHumidity), gomock.Eq(55.25)).
		Times(1)

	telemetry := &models.Telemetry{
		Temperature:    31.5,
		Humidity:       55.25,
		BatteryLevel:   f64(88),
		SignalStrength: f64(70),
	}
	err := iotObj.Ingest.HandleReading(sensor.SensorID, telemetry)
	assert.NoError(t, err)

	// Persisted values must equal the payload values exactly.
	var saved models.Reading
	err = dbInstance.Conn.Where("sensor_id = ?", sensor.ID).First(&saved).Error
	require.NoError(t, err)
	assert.Equal(t, 31.5, saved.Temperature)
	assert.Equal(t, 55.25, saved.Humidity)
	require.NotNil(t, saved.BatteryLevel)
	assert.Equal(t, 88.0, *saved.BatteryLevel)
	require.NotNil(t, saved.SignalStrength)
	assert.Equal(t, 70.0, *saved.SignalStrength)
	assert.Equal(t, sensor.UserID, saved.UserID)
	assert.False(t, saved.Timestamp.IsZero())
}

func TestHandleReading_UnknownSensorDropped(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, dbInstance, _, mockEvaluate, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, true, false)
	defer ctrl.Finish()

	unknownID := uuid.NewString()

	telemetry := &models.Telemetry{Temperature: 21, Humidity: 40}
	err := iotObj.Ingest.HandleReading(unknownID, telemetry)
	assert.NoError(t, err, "unknown sensor is dropped, not an error")

	var count int64
	require.NoError(t, dbInstance.Conn.Model(&models.Reading{}).Where("user_id = ?", unknownID).Count(&count).Error)
	assert.Zero(t, count)

	// The pipeline keeps working: a following valid message is still ingested.
	_, sensor := seedUserAndSensor(t, dbInstance)
	mockEvaluate.EXPECT().EvaluateMetric(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	err = iotObj.Ingest.HandleReading(sensor.SensorID, telemetry)
	assert.NoError(t, err)

	require.NoError(t, dbInstance.Conn.Model(&models.Reading{}).Where("sensor_id = ?", sensor.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestHandleReading_EvaluationFailureDoesNotPropagate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, iotObj, dbInstance, _, mockEvaluate, _, _ := GetMockIOTWithMemorySqliteDialector(t, false, true, false)
	defer ctrl.Finish()

	_, sensor := seedUserAndSensor(t, dbInstance)

	mockEvaluate.
		EXPECT().
		EvaluateMetric(gomock.Any(), gomock.Eq(models.MetricTypeTemperature), gomock.Any()).
		Return(assert.AnError).
		Times(1)
	// humidity still evaluates after a temperature failure
	mockEvaluate.
		EXPECT().
		EvaluateMetric(gomock.Any(), gomock.Eq(models.MetricTypeHumidity), gomock.Any()).
		Times(1)

	err := iotObj.Ingest.HandleReading(sensor.SensorID, &models.Telemetry{Temperature: 99, Humidity: 10})
	assert.NoError(t, err)
}
