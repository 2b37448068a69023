package http

import (
	"net/http"
	"strconv"

	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
}

var registerDeviceSchema = z.Struct(z.Shape{
	"DeviceID": z.String().Required().Min(1),
	"UserID":   z.String().Required().Min(1),
	"Name":     z.String(),
})

func (rs *RestfulServer) RegisterDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := registerDeviceSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	existing, err := rs.Iot.Store.Devices.FindByDeviceID(req.DeviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "device already registered"})
		return
	}

	device := models.Device{
		DeviceID: req.DeviceID,
		Name:     req.Name,
		Status:   models.DeviceStatusInactive,
		UserID:   req.UserID,
	}
	if err := rs.Iot.Store.Devices.Create(&device); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, device)
}

type DiscoverSensorsRequest struct {
	UserID  string   `json:"user_id"`
	Sensors []string `json:"sensors"`
}

var discoverSensorsSchema = z.Struct(z.Shape{
	"UserID":  z.String().Required().Min(1),
	"Sensors": z.Slice(z.String().Min(1)).Required().Min(1),
})

func (rs *RestfulServer) DiscoverSensors(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req DiscoverSensorsRequest
	if err := discoverSensorsSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Iot.Store.Devices.FindByDeviceID(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if device == nil || device.UserID != req.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "device not found or does not belong to user"})
		return
	}

	registered, err := rs.Iot.Store.Sensors.FindAnyRegistered(req.Sensors)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(registered) > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "some sensors are already registered"})
		return
	}

	for _, sensorID := range req.Sensors {
		sensor := models.Sensor{
			SensorID: sensorID,
			Status:   models.SensorStatusUnassigned,
			DeviceID: deviceID,
			UserID:   req.UserID,
		}
		if err := rs.Iot.Store.Sensors.Create(&sensor); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	unassigned, err := rs.Iot.Store.Sensors.ListUnassigned(req.UserID, deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sensorIDs := common.Mapper(unassigned, func(s models.Sensor) string {
		return s.SensorID
	})

	c.JSON(http.StatusOK, gin.H{"unassigned_sensors": sensorIDs})
}

// resolveSensor maps the external sensor identifier in the URL plus the
// calling user onto a sensor row. Writes the error response itself.
func (rs *RestfulServer) resolveSensor(c *gin.Context, userID string) *models.Sensor {
	sensorID := c.Param("sensor_id")

	sensor, err := rs.Iot.Store.Sensors.FindForUser(userID, sensorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil
	}
	if sensor == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sensor not found or does not belong to user"})
		return nil
	}
	return sensor
}

type ThresholdRequest struct {
	UserID    string  `json:"user_id"`
	Type      string  `json:"type"`
	Threshold float64 `json:"threshold"`
	Condition string  `json:"condition"`
}

var thresholdRequestSchema = z.Struct(z.Shape{
	"UserID":    z.String().Required().Min(1),
	"Type":      z.String().Required().OneOf([]string{"temperature", "humidity"}),
	"Threshold": z.Float64().Required(),
	"Condition": z.String().Required().OneOf([]string{"above", "below"}),
})

func (rs *RestfulServer) CreateThreshold(c *gin.Context) {
	if !rs.CheckLimiter(c.Param("sensor_id")) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ThresholdRequest
	if err := thresholdRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	sensor := rs.resolveSensor(c, req.UserID)
	if sensor == nil {
		return
	}

	threshold := models.Threshold{
		SensorID:  sensor.ID,
		UserID:    req.UserID,
		Type:      models.MetricType(req.Type),
		Threshold: req.Threshold,
		Condition: models.Condition(req.Condition),
		IsActive:  true,
	}
	if err := rs.Iot.Store.Thresholds.Create(&threshold); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, threshold)
}

func (rs *RestfulServer) ListThresholds(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	sensor := rs.resolveSensor(c, userID)
	if sensor == nil {
		return
	}

	thresholds, err := rs.Iot.Store.Thresholds.ListBySensor(sensor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, thresholds)
}

type ToggleThresholdRequest struct {
	UserID string `json:"user_id"`
}

var toggleThresholdSchema = z.Struct(z.Shape{
	"UserID": z.String().Required().Min(1),
})

func (rs *RestfulServer) ToggleThreshold(c *gin.Context) {
	thresholdID := c.Param("threshold_id")

	var req ToggleThresholdRequest
	if err := toggleThresholdSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	threshold, err := rs.Iot.Store.Thresholds.Toggle(req.UserID, thresholdID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if threshold == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "threshold not found or does not belong to user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": threshold.ID, "is_active": threshold.IsActive})
}

func (rs *RestfulServer) DeleteThreshold(c *gin.Context) {
	thresholdID := c.Param("threshold_id")

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := rs.Iot.Store.Thresholds.Delete(userID, thresholdID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ListReadings(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	sensor := rs.resolveSensor(c, userID)
	if sensor == nil {
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	readings, err := rs.Iot.Store.Readings.ListBySensor(sensor.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	sensor := rs.resolveSensor(c, userID)
	if sensor == nil {
		return
	}

	alerts, err := rs.Iot.Dispatch.GetSensorAlerts(sensor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	sensorID := c.Param("sensor_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(sensorID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
