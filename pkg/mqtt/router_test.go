package mqtt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/iot/mocks"
	"sensareal.xyz/telemetry-service/pkg/models"
	_ "sensareal.xyz/telemetry-service/pkg/testing"
)

func newMockRouter(t *testing.T) (*gomock.Controller, *Router, *mocks.MockIIngest, *mocks.MockIDevice) {
	ctrl := gomock.NewController(t)
	mockIngest := mocks.NewMockIIngest(ctrl)
	mockDevice := mocks.NewMockIDevice(ctrl)
	return ctrl, &Router{Ingest: mockIngest, Device: mockDevice}, mockIngest, mockDevice
}

func TestHandleMessage_Reading(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, router, mockIngest, _ := newMockRouter(t)
	defer ctrl.Finish()

	sensorID := uuid.NewString()

	mockIngest.
		EXPECT().
		HandleReading(gomock.Eq(sensorID), gomock.Any()).
		DoAndReturn(func(_ string, telemetry *models.Telemetry) error {
			assert.Equal(t, 23.5, telemetry.Temperature)
			assert.Equal(t, 61.0, telemetry.Humidity)
			require.NotNil(t, telemetry.BatteryLevel)
			assert.Equal(t, 90.0, *telemetry.BatteryLevel)
			assert.Nil(t, telemetry.SignalStrength)
			return nil
		}).
		Times(1)

	router.HandleMessage("sensor/"+sensorID, []byte(`{"temperature":23.5,"humidity":61,"batteryLevel":90}`))
}

func TestHandleMessage_MalformedDropped(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, router, mockIngest, _ := newMockRouter(t)
	defer ctrl.Finish()

	sensorID := uuid.NewString()

	// None of these may reach the core or panic.
	router.HandleMessage("sensor", []byte(`{"temperature":1,"humidity":1}`))
	router.HandleMessage("esp/abc/reading", []byte(`{"temperature":1,"humidity":1}`))
	router.HandleMessage("sensor/"+sensorID, []byte(`not json`))
	router.HandleMessage("sensor/"+sensorID, []byte(`{"humidity":50}`))
	router.HandleMessage("sensor/"+sensorID, []byte(`{"temperature":-300,"humidity":50}`))
	router.HandleMessage("sensor/"+sensorID, []byte(`{"temperature":20,"humidity":120}`))

	// The pipeline is unaffected: the next valid message is still routed.
	mockIngest.
		EXPECT().
		HandleReading(gomock.Eq(sensorID), gomock.Any()).
		Times(1)
	router.HandleMessage("sensor/"+sensorID, []byte(`{"temperature":20,"humidity":50}`))
}

func TestHandleMessage_IngestionErrorContained(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, router, mockIngest, _ := newMockRouter(t)
	defer ctrl.Finish()

	sensorID := uuid.NewString()

	mockIngest.
		EXPECT().
		HandleReading(gomock.Eq(sensorID), gomock.Any()).
		Return(assert.AnError).
		Times(1)

	// The error is logged and contained at the message boundary.
	router.HandleMessage("sensor/"+sensorID, []byte(`{"temperature":20,"humidity":50}`))
}

func TestHandleMessage_DeviceStatus(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, router, _, mockDevice := newMockRouter(t)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	mockDevice.
		EXPECT().
		UpdateDeviceStatus(gomock.Eq(deviceID), gomock.Any()).
		DoAndReturn(func(_ string, update *models.DeviceStatusUpdate) error {
			assert.Equal(t, models.DeviceStatusActive, update.Status)
			require.NotNil(t, update.BatteryLevel)
			assert.Equal(t, 75.0, *update.BatteryLevel)
			return nil
		}).
		Times(1)

	router.HandleMessage("device/"+deviceID+"/status", []byte(`{"status":"ACTIVE","batteryLevel":75}`))

	// invalid status enum is dropped
	router.HandleMessage("device/"+deviceID+"/status", []byte(`{"status":"SLEEPING"}`))
}

func TestHandleMessage_Heartbeat(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, router, _, mockDevice := newMockRouter(t)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	mockDevice.
		EXPECT().
		RecordHeartbeat(gomock.Eq(deviceID), gomock.Any()).
		DoAndReturn(func(_ string, health *models.DeviceHealth) error {
			require.NotNil(t, health.BatteryLevel)
			assert.Equal(t, 55.0, *health.BatteryLevel)
			require.NotNil(t, health.SignalStrength)
			assert.Equal(t, 80.0, *health.SignalStrength)
			return nil
		}).
		Times(1)

	router.HandleMessage("device/"+deviceID+"/heartbeat", []byte(`{"batteryLevel":55,"signalStrength":80}`))
}

func TestHandleMessage_ZeroValuesAccepted(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, router, mockIngest, _ := newMockRouter(t)
	defer ctrl.Finish()

	sensorID := uuid.NewString()

	// 0 is a legitimate measurement for both metrics, not a missing field.
	mockIngest.
		EXPECT().
		HandleReading(gomock.Eq(sensorID), gomock.Any()).
		DoAndReturn(func(_ string, telemetry *models.Telemetry) error {
			assert.Equal(t, 0.0, telemetry.Temperature)
			assert.Equal(t, 0.0, telemetry.Humidity)
			return nil
		}).
		Times(1)

	router.HandleMessage("sensor/"+sensorID, []byte(`{"temperature":0,"humidity":0}`))
}
