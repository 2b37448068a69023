package iot

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sensareal.xyz/telemetry-service/pkg/db"
	"sensareal.xyz/telemetry-service/pkg/iot/mocks"
	"sensareal.xyz/telemetry-service/pkg/models"
	notifymocks "sensareal.xyz/telemetry-service/pkg/notify/mocks"
	"sensareal.xyz/telemetry-service/pkg/store"
)

func GetMockIOTWithMemorySqliteDialector(t *testing.T, useMockIngest, useMockEvaluate, useMockDispatch bool) (
	*gomock.Controller,
	*IOT,
	*db.DB,
	*mocks.MockIIngest,
	*mocks.MockIEvaluate,
	*mocks.MockIDispatch,
	*notifymocks.MockNotifier,
) {
	ctrl := gomock.NewController(t)

	mockIngest := mocks.NewMockIIngest(ctrl)
	mockEvaluate := mocks.NewMockIEvaluate(ctrl)
	mockDispatch := mocks.NewMockIDispatch(ctrl)
	mockNotifier := notifymocks.NewMockNotifier(ctrl)

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector()) // ensure migrations
	iotInstance := &IOT{
		Store:    store.New(dbInstance),
		Notifier: mockNotifier,
	}

	ingestService := iotInstance.GetIIngest()
	if useMockIngest {
		ingestService = mockIngest
	}

	evaluateService := iotInstance.GetIEvaluate()
	if useMockEvaluate {
		evaluateService = mockEvaluate
	}

	dispatchService := iotInstance.GetIDispatch()
	if useMockDispatch {
		dispatchService = mockDispatch
	}

	iotInstance.WithServices(ServiceOpts{
		Ingest:   ingestService,
		Evaluate: evaluateService,
		Dispatch: dispatchService,
		Device:   iotInstance.GetIDevice(),
	})

	return ctrl, iotInstance, dbInstance, mockIngest, mockEvaluate, mockDispatch, mockNotifier
}

func seedUserAndSensor(t *testing.T, dbInstance *db.DB) (*models.User, *models.Sensor) {
	user := &models.User{
		ID:    uuid.NewString(),
		Email: uuid.NewString() + "@example.com",
		Name:  "Test User",
	}
	require.NoError(t, dbInstance.Conn.Create(user).Error)

	sensor := &models.Sensor{
		ID:       uuid.NewString(),
		SensorID: uuid.NewString(),
		Name:     "Greenhouse",
		Status:   models.SensorStatusAssigned,
		DeviceID: uuid.NewString(),
		UserID:   user.ID,
	}
	require.NoError(t, dbInstance.Conn.Create(sensor).Error)

	return user, sensor
}

func f64(v float64) *float64 {
	return &v
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
