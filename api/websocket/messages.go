package websocket

import (
	"encoding/json"
	"time"

	"github.com/OldStager01/diabetes-risk/pkg/models"
)

type MessageType string

const (
	MessageTypePredict    MessageType = "predict"
	MessageTypePrediction MessageType = "prediction"
	MessageTypeError      MessageType = "error"
)

// IncomingMessage is a prediction request from the live preview. ID is
// echoed back so the client can discard stale answers.
type IncomingMessage struct {
	Type  MessageType           `json:"type"`
	ID    string                `json:"id,omitempty"`
	Input models.PatientRequest `json:"input"`
}

type OutgoingMessage struct {
	Type      MessageType `json:"type"`
	ID        string      `json:"id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewMessage(msgType MessageType, id string, data interface{}) *OutgoingMessage {
	return &OutgoingMessage{
		Type:      msgType,
		ID:        id,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func (m *OutgoingMessage) JSON() []byte {
	data, _ := json.Marshal(m)
	return data
}

type ErrorData struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
