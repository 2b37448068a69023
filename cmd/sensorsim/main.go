package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

var maxSensors int = 1000
var rounds int = 10
var brokerURL string = "tcp://127.0.0.1:1883"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type simSensor struct {
	sensorID string
	deviceID string
}

func main() {
	sensors := make([]simSensor, maxSensors)
	for i := 0; i < maxSensors; i++ {
		sensors[i] = simSensor{
			sensorID: uuid.NewString(),
			deviceID: uuid.NewString(),
		}
	}
	fmt.Printf("generated %v sensor IDs\n", maxSensors)

	opts := paho.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("sensorsim-" + uuid.NewString())
	client := paho.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		panic(fmt.Sprintf("failed to connect to broker: %v", token.Error()))
	}
	defer client.Disconnect(250)

	fmt.Printf("connected to broker %v\n", brokerURL)

	startTime := time.Now()
	published := 0
	for round := 0; round < rounds; round++ {
		wg := sync.WaitGroup{}
		for i := 0; i < maxSensors; i++ {
			i := i
			wg.Add(1)
			go func() {
				publishReading(client, sensors[i])
				if flipCoin() {
					publishHeartbeat(client, sensors[i])
				}
				wg.Done()
			}()
		}
		wg.Wait()
		published += maxSensors
		fmt.Printf("\rround %v done", round+1)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\npublished %v readings: used time=%v seconds, throughput=%v msg/second\n",
		published, usedTime.Seconds(), float64(published)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func publishReading(client paho.Client, s simSensor) {
	payload := map[string]any{
		"temperature": rndFloat64(-10.0, 45.0, 2),
		"humidity":    rndFloat64(0.0, 100.0, 2),
	}
	if flipCoin() {
		payload["batteryLevel"] = rndFloat64(0.0, 100.0, 2)
	}
	if flipCoin() {
		payload["signalStrength"] = rndFloat64(0.0, 100.0, 2)
	}

	publishJSON(client, "sensor/"+s.sensorID, payload)
}

func publishHeartbeat(client paho.Client, s simSensor) {
	payload := map[string]any{
		"batteryLevel":   rndFloat64(0.0, 100.0, 2),
		"signalStrength": rndFloat64(0.0, 100.0, 2),
	}
	publishJSON(client, "device/"+s.deviceID+"/heartbeat", payload)

	if flipCoin() {
		status := "ACTIVE"
		if flipCoin() {
			status = "INACTIVE"
		}
		publishJSON(client, "device/"+s.deviceID+"/status", map[string]any{"status": status})
	}
}

func publishJSON(client paho.Client, topic string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	if token := client.Publish(topic, 0, false, data); token.Wait() && token.Error() != nil {
		fmt.Printf("\nerror publishing to %v: %v\n", topic, token.Error())
	}
}
