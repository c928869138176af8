package websocket_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldStager01/diabetes-risk/api/websocket"
	"github.com/OldStager01/diabetes-risk/internal/logger"
	"github.com/OldStager01/diabetes-risk/internal/model/modeltest"
	"github.com/OldStager01/diabetes-risk/internal/predictor"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type received struct {
	Type websocket.MessageType `json:"type"`
	ID   string                `json:"id"`
	Data json.RawMessage       `json:"data"`
}

func dial(t *testing.T) *gorillaws.Conn {
	t.Helper()

	svc := predictor.NewService(modeltest.Artifacts(t), predictor.Options{IncludeConfidence: true})
	router := gin.New()
	router.GET("/ws/predict", websocket.ServeWebSocket(svc, websocket.Config{
		PingInterval: time.Second,
		PongTimeout:  2 * time.Second,
	}))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/predict"
	conn, _, err := gorillaws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *gorillaws.Conn, payload string) received {
	t.Helper()

	require.NoError(t, conn.WriteMessage(gorillaws.TextMessage, []byte(payload)))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg received
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestServeWebSocket_Prediction(t *testing.T) {
	conn := dial(t)

	msg := roundTrip(t, conn, `{"type":"predict","id":"a1","input":{"Age":45,"Glucose":99,"BloodPressure":72,"Insulin":0,"BMI":33.6,"SkinThickness":35,"DiabetesPedigreeFunction":0.627}}`)

	assert.Equal(t, websocket.MessageTypePrediction, msg.Type)
	assert.Equal(t, "a1", msg.ID)

	var result struct {
		Phrase     string   `json:"phrase"`
		Confidence *float64 `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(msg.Data, &result))
	assert.Equal(t, "does not indicate", result.Phrase)
	require.NotNil(t, result.Confidence)
	assert.InDelta(t, 73.1, *result.Confidence, 1e-9)
}

func TestServeWebSocket_Errors(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		expectID     string
		expectSubstr string
	}{
		{
			name:         "missing field",
			payload:      `{"type":"predict","id":"b2","input":{"Glucose":148}}`,
			expectID:     "b2",
			expectSubstr: "field Age is required",
		},
		{
			name:         "unknown type",
			payload:      `{"type":"subscribe","id":"c3"}`,
			expectID:     "c3",
			expectSubstr: `unknown message type "subscribe"`,
		},
		{
			name:         "malformed json",
			payload:      `{"type":`,
			expectSubstr: "malformed message",
		},
	}

	conn := dial(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := roundTrip(t, conn, tt.payload)

			assert.Equal(t, websocket.MessageTypeError, msg.Type)
			assert.Equal(t, tt.expectID, msg.ID)

			var data websocket.ErrorData
			require.NoError(t, json.Unmarshal(msg.Data, &data))
			assert.Contains(t, data.Error, tt.expectSubstr)
			assert.Equal(t, string(predictor.KindInvalidInput), data.Kind)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := websocket.DefaultConfig()

	assert.Less(t, cfg.PingInterval, cfg.PongTimeout)
	assert.Positive(t, cfg.ClientBuffer)
	assert.Positive(t, cfg.MaxMessageSize)
}
