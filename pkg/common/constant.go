package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyDBType string = "TELEMETRY_DB_TYPE"
	EnvKeyDbPath string = "TELEMETRY_DB_PATH"

	EnvKeyHttpHostPort string = "TELEMETRY_HTTP_HOST_PORT"

	EnvKeyMqttURL            string = "MQTT_URL"
	EnvKeyMqttClientIDPrefix string = "MQTT_CLIENT_ID_PREFIX"
	EnvKeyMqttReconnectDelay string = "MQTT_RECONNECT_DELAY"

	EnvKeySmtpHost string = "SMTP_HOST"
	EnvKeySmtpPort string = "SMTP_PORT"
	EnvKeySmtpUser string = "SMTP_USER"
	EnvKeySmtpPass string = "SMTP_PASS"
	EnvKeySmtpFrom string = "SMTP_FROM"

	EnvKeyDefaultRate  string = "TELEMETRY_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "TELEMETRY_DEFAULT_BURST"

	LoggerNameTelemetryCore string = "telemetry_core"
	LoggerNameBroker        string = "broker"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory      string = "category"
	LoggerCategoryRouter     string = "router"
	LoggerCategoryIngest     string = "ingest"
	LoggerCategoryEvaluate   string = "evaluate"
	LoggerCategoryDispatch   string = "dispatch"
	LoggerCategoryDevice     string = "device"
	LoggerCategoryConnection string = "connection"
	LoggerCategoryNotify     string = "notify"
)
