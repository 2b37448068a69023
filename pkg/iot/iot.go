package iot

import (
	"sensareal.xyz/telemetry-service/pkg/models"
	"sensareal.xyz/telemetry-service/pkg/notify"
	"sensareal.xyz/telemetry-service/pkg/store"
)

type IIngest interface {
	HandleReading(sensorID string, telemetry *models.Telemetry) error
}

type IEvaluate interface {
	EvaluateMetric(sensor *models.Sensor, metric models.MetricType, value float64) error
}

type IDispatch interface {
	DispatchAlerts(sensor *models.Sensor, metric models.MetricType, value float64, violated []models.Threshold) error
	GetSensorAlerts(sensorRef string) ([]models.AlertRecord, error)
}

type IDevice interface {
	UpdateDeviceStatus(deviceID string, update *models.DeviceStatusUpdate) error
	RecordHeartbeat(deviceID string, health *models.DeviceHealth) error
}

type IOT struct {
	Store    *store.Store
	Notifier notify.Notifier

	Ingest   IIngest
	Evaluate IEvaluate
	Dispatch IDispatch
	Device   IDevice
}

type ServiceOpts struct {
	Ingest   IIngest
	Evaluate IEvaluate
	Dispatch IDispatch
	Device   IDevice
}

func (i *IOT) WithServices(opts ServiceOpts) *IOT {
	if opts.Ingest != nil {
		i.Ingest = opts.Ingest
	}
	if opts.Evaluate != nil {
		i.Evaluate = opts.Evaluate
	}
	if opts.Dispatch != nil {
		i.Dispatch = opts.Dispatch
	}
	if opts.Device != nil {
		i.Device = opts.Device
	}
	return i
}
