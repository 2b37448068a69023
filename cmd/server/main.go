package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"sensareal.xyz/telemetry-service/pkg/common"
	"sensareal.xyz/telemetry-service/pkg/db"
	telemetryHttp "sensareal.xyz/telemetry-service/pkg/http"
	"sensareal.xyz/telemetry-service/pkg/iot"
	"sensareal.xyz/telemetry-service/pkg/mqtt"
	"sensareal.xyz/telemetry-service/pkg/notify"
	"sensareal.xyz/telemetry-service/pkg/store"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeyDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown TELEMETRY_DB_TYPE: " + dbType)
	}

	mqttURL := strings.TrimSpace(os.Getenv(common.EnvKeyMqttURL))
	if mqttURL == "" {
		log.Fatal("MQTT_URL not set in .env")
	}

	clientIDPrefix := strings.TrimSpace(os.Getenv(common.EnvKeyMqttClientIDPrefix))
	if clientIDPrefix == "" {
		clientIDPrefix = "telemetry-service"
	}

	var reconnectDelay time.Duration
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyMqttReconnectDelay)); raw != "" {
		if reconnectDelay, err = time.ParseDuration(raw); err != nil {
			log.Fatal("Invalid MQTT_RECONNECT_DELAY, should be a duration value like 1s")
		}
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDefaultRate), 64); err != nil {
		log.Fatal("Invalid TELEMETRY_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid TELEMETRY_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	smtpPort, err := strconv.Atoi(os.Getenv(common.EnvKeySmtpPort))
	if err != nil {
		log.Fatal("Invalid SMTP_PORT, or not set in .env, should be an int value")
	}
	notifier := notify.NewSMTPNotifier(
		os.Getenv(common.EnvKeySmtpHost),
		smtpPort,
		os.Getenv(common.EnvKeySmtpUser),
		os.Getenv(common.EnvKeySmtpPass),
		os.Getenv(common.EnvKeySmtpFrom),
	)

	logger := common.GetLogger()

	telemetryCore := iot.IOT{
		Store:    store.New(dbInstance),
		Notifier: notifier,
	}
	telemetryCore.WithServices(iot.ServiceOpts{
		Ingest:   telemetryCore.GetIIngest(),
		Evaluate: telemetryCore.GetIEvaluate(),
		Dispatch: telemetryCore.GetIDispatch(),
		Device:   telemetryCore.GetIDevice(),
	})

	router := &mqtt.Router{
		Ingest: telemetryCore.Ingest,
		Device: telemetryCore.Device,
	}

	manager := mqtt.NewManager(mqtt.ManagerConfig{
		BrokerURL:      mqttURL,
		ClientID:       clientIDPrefix + "-" + uuid.NewString(),
		ReconnectDelay: reconnectDelay,
		Subscriptions:  mqtt.DefaultSubscriptions(),
	}, router.HandleMessage)

	logger.Info("Starting MQTT manager", zap.String("broker", mqttURL))
	manager.Start()
	defer manager.Stop()

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &telemetryHttp.RestfulServer{
		Server:           gin.Default(),
		Iot:              &telemetryCore,
		RateLimiterStore: iot.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
