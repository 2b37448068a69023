package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"sensareal.xyz/telemetry-service/pkg/iot"
)

type RestfulServer struct {
	Server           *gin.Engine
	Iot              *iot.IOT
	RateLimiterStore *iot.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(key string, keyRate float64, keyBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(keyRate), keyBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	rs.Server.POST("/devices", rs.RegisterDevice)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.POST("/sensors/discover", rs.DiscoverSensors)
	}

	sensors := rs.Server.Group("/sensors/:sensor_id")
	{
		sensors.GET("/readings", rs.ListReadings)
		sensors.GET("/alerts", rs.GetAlerts)
		sensors.POST("/thresholds", rs.CreateThreshold)
		sensors.GET("/thresholds", rs.ListThresholds)
		sensors.POST("/limiter", rs.PostLimiter)
	}

	thresholds := rs.Server.Group("/thresholds/:threshold_id")
	{
		thresholds.PATCH("/toggle", rs.ToggleThreshold)
		thresholds.DELETE("", rs.DeleteThreshold)
	}
}
