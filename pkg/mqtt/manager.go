package mqtt

import (
	"encoding/json"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"sensareal.xyz/telemetry-service/pkg/common"
)

// DefaultReconnectDelay is the fixed retry interval. Reconnects never back
// off and never give up; broker unavailability is not fatal to the process.
const DefaultReconnectDelay = time.Second

type ManagerConfig struct {
	BrokerURL      string
	ClientID       string
	ReconnectDelay time.Duration
	Subscriptions  []string
}

// MessageHandler receives every inbound message. Each call runs in its own
// goroutine; ordering across sensors is not guaranteed.
type MessageHandler func(topic string, payload []byte)

// Manager owns the single broker connection for the process lifetime. It is
// constructed explicitly and started/stopped by the entry point.
type Manager struct {
	cfg       ManagerConfig
	client    paho.Client
	onMessage MessageHandler
}

func NewManager(cfg ManagerConfig, onMessage MessageHandler) *Manager {
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = DefaultReconnectDelay
	}

	m := &Manager{cfg: cfg, onMessage: onMessage}

	opts := paho.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(cfg.ReconnectDelay).
		SetMaxReconnectInterval(cfg.ReconnectDelay).
		SetOnConnectHandler(m.onConnect).
		SetConnectionLostHandler(m.onConnectionLost).
		SetDefaultPublishHandler(m.onRawMessage)

	m.client = paho.NewClient(opts)
	return m
}

// Start begins connecting. It returns immediately; connection failures are
// logged and retried at the fixed interval.
func (m *Manager) Start() {
	logger := m.logger()
	logger.Info("Connecting to MQTT broker", zap.String("broker", m.cfg.BrokerURL))

	token := m.client.Connect()
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			logger.Error("MQTT connect error", zap.Error(err))
		}
	}()
}

func (m *Manager) Stop() {
	m.client.Disconnect(250)
	m.logger().Info("Disconnected from MQTT broker")
}

func (m *Manager) IsConnected() bool {
	return m.client.IsConnected()
}

// Publish sends a JSON-encoded payload. Exposed for administration and
// testing; the ingestion path is inbound only.
func (m *Manager) Publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	token := m.client.Publish(topic, 0, false, data)
	token.Wait()
	return token.Error()
}

// Subscriptions are (re)established on every successful connect, so a broker
// restart does not silently drop them.
func (m *Manager) onConnect(client paho.Client) {
	logger := m.logger()
	logger.Info("Connected to MQTT broker")

	for _, topic := range m.cfg.Subscriptions {
		if token := client.Subscribe(topic, 0, nil); token.Wait() && token.Error() != nil {
			logger.Error("MQTT subscription failed", zap.String("topic", topic), zap.Error(token.Error()))
		} else {
			logger.Info("Subscribed to topic", zap.String("topic", topic))
		}
	}
}

func (m *Manager) onConnectionLost(client paho.Client, err error) {
	m.logger().Warn("MQTT connection lost", zap.Error(err))
}

func (m *Manager) onRawMessage(client paho.Client, msg paho.Message) {
	if m.onMessage == nil {
		return
	}
	// each message is an independent unit of work
	go m.onMessage(msg.Topic(), msg.Payload())
}

func (m *Manager) logger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameBroker,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryConnection),
	)
}
