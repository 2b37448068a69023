package mqtt

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sensareal.xyz/telemetry-service/pkg/common"
	_ "sensareal.xyz/telemetry-service/pkg/testing"
)

func TestNewManager_Defaults(t *testing.T) {
	common.SetTestLoggerNop()

	m := NewManager(ManagerConfig{
		BrokerURL: "tcp://localhost:1883",
		ClientID:  "test-client",
	}, nil)

	assert.Equal(t, DefaultReconnectDelay, m.cfg.ReconnectDelay)
	assert.False(t, m.IsConnected())

	m = NewManager(ManagerConfig{
		BrokerURL:      "tcp://localhost:1883",
		ClientID:       "test-client",
		ReconnectDelay: 5 * time.Second,
	}, nil)
	assert.Equal(t, 5*time.Second, m.cfg.ReconnectDelay)
}

func TestManager_PublishUnconnected(t *testing.T) {
	common.SetTestLoggerNop()

	m := NewManager(ManagerConfig{
		BrokerURL:      "tcp://localhost:1883",
		ClientID:       "test-client",
		ReconnectDelay: 50 * time.Millisecond,
	}, nil)

	// Never connected: the publish fails without touching the network path.
	err := m.Publish("sensor/test", map[string]any{"temperature": 20.0, "humidity": 50.0})
	assert.Error(t, err)
}

func TestManager_PublishMarshalError(t *testing.T) {
	common.SetTestLoggerNop()

	m := NewManager(ManagerConfig{
		BrokerURL: "tcp://localhost:1883",
		ClientID:  "test-client",
	}, nil)

	err := m.Publish("sensor/test", make(chan int))
	assert.Error(t, err)
}

func TestManager_MessagesFanOut(t *testing.T) {
	common.SetTestLoggerNop()

	var mu sync.Mutex
	var topics []string
	done := make(chan struct{}, 2)

	m := NewManager(ManagerConfig{
		BrokerURL: "tcp://localhost:1883",
		ClientID:  "test-client",
	}, func(topic string, payload []byte) {
		mu.Lock()
		topics = append(topics, topic)
		mu.Unlock()
		done <- struct{}{}
	})

	m.onRawMessage(nil, fakeMessage{topic: "sensor/a", payload: []byte(`{}`)})
	m.onRawMessage(nil, fakeMessage{topic: "sensor/b", payload: []byte(`{}`)})

	for n := 0; n < 2; n++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("handler not invoked")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"sensor/a", "sensor/b"}, topics)
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (f fakeMessage) Duplicate() bool   { return false }
func (f fakeMessage) Qos() byte         { return 0 }
func (f fakeMessage) Retained() bool    { return false }
func (f fakeMessage) Topic() string     { return f.topic }
func (f fakeMessage) MessageID() uint16 { return 0 }
func (f fakeMessage) Payload() []byte   { return f.payload }
func (f fakeMessage) Ack()              {}
