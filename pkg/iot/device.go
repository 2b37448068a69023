package iot

import (
	"time"

	"go.uber.org/zap"
	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/models"
)

func (i *IOT) updateDeviceStatus(deviceID string, update *models.DeviceStatusUpdate) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	device, err := i.Store.Devices.FindByDeviceID(deviceID)
	if err != nil {
		return err
	}
	if device == nil {
		logger.Warn("Device not found, dropping status update", zap.String("device_id", deviceID))
		return nil
	}

	if err := i.Store.Devices.UpdateStatus(deviceID, update.Status, update.BatteryLevel, update.SignalStrength); err != nil {
		return err
	}

	logger.Info("Device status updated",
		zap.String("device_id", deviceID),
		zap.String("status", string(update.Status)))
	return nil
}

func (i *IOT) recordHeartbeat(deviceID string, health *models.DeviceHealth) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	device, err := i.Store.Devices.FindByDeviceID(deviceID)
	if err != nil {
		return err
	}
	if device == nil {
		logger.Warn("Device not found, dropping heartbeat", zap.String("device_id", deviceID))
		return nil
	}

	if err := i.Store.Devices.UpdateHeartbeat(deviceID, time.Now(), health.BatteryLevel, health.SignalStrength); err != nil {
		return err
	}

	logger.Info("Device heartbeat recorded", zap.String("device_id", deviceID))
	return nil
}

type IDeviceImpl struct {
	iot *IOT
}

func (id *IDeviceImpl) UpdateDeviceStatus(deviceID string, update *models.DeviceStatusUpdate) error {
	return id.iot.updateDeviceStatus(deviceID, update)
}

func (id *IDeviceImpl) RecordHeartbeat(deviceID string, health *models.DeviceHealth) error {
	return id.iot.recordHeartbeat(deviceID, health)
}

func (i *IOT) GetIDevice() IDevice {
	return &IDeviceImpl{iot: i}
}
