package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/OldStager01/diabetes-risk/internal/logger"
	"github.com/OldStager01/diabetes-risk/internal/predictor"
	"github.com/OldStager01/diabetes-risk/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Predictor scores a single patient input.
type Predictor interface {
	Predict(ctx context.Context, in models.PatientInput) (*models.PredictionResult, error)
}

type Config struct {
	MaxMessageSize  int64
	PingInterval    time.Duration
	PongTimeout     time.Duration
	WriteTimeout    time.Duration
	ReadBufferSize  int
	WriteBufferSize int
	ClientBuffer    int
}

func DefaultConfig() Config {
	return Config{
		MaxMessageSize:  1024,
		PingInterval:    54 * time.Second,
		PongTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		ClientBuffer:    16,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.PingInterval <= 0 {
		c.PingInterval = d.PingInterval
	}
	if c.PongTimeout <= 0 {
		c.PongTimeout = d.PongTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ReadBufferSize <= 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize <= 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.ClientBuffer <= 0 {
		c.ClientBuffer = d.ClientBuffer
	}
	return c
}

type Client struct {
	ctx       context.Context
	conn      *websocket.Conn
	send      chan []byte
	predictor Predictor
	cfg       Config
}

func NewClient(ctx context.Context, conn *websocket.Conn, p Predictor, cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		ctx:       ctx,
		conn:      conn,
		send:      make(chan []byte, cfg.ClientBuffer),
		predictor: p,
		cfg:       cfg,
	}
}

// ReadPump answers each request in order. It is the only writer to send
// and closes it on exit, which stops WritePump.
func (c *Client) ReadPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongTimeout))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WarnCtxf(c.ctx, "WebSocket error: %v", err)
			}
			break
		}

		var msg IncomingMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.sendError("", predictor.InvalidInput(fmt.Errorf("malformed message: %w", err)))
			continue
		}
		c.handleMessage(&msg)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One JSON document per frame
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg *IncomingMessage) {
	switch msg.Type {
	case MessageTypePredict:
		input, err := predictor.FromRequest(msg.Input)
		if err != nil {
			c.sendError(msg.ID, err)
			return
		}
		result, err := c.predictor.Predict(c.ctx, input)
		if err != nil {
			c.sendError(msg.ID, err)
			return
		}
		c.enqueue(NewMessage(MessageTypePrediction, msg.ID, result))
	default:
		c.sendError(msg.ID, predictor.InvalidInput(fmt.Errorf("unknown message type %q", msg.Type)))
	}
}

func (c *Client) sendError(id string, err error) {
	c.enqueue(NewMessage(MessageTypeError, id, ErrorData{
		Error: err.Error(),
		Kind:  string(predictor.KindOf(err)),
	}))
}

func (c *Client) enqueue(msg *OutgoingMessage) {
	select {
	case c.send <- msg.JSON():
	default:
		logger.WarnCtxf(c.ctx, "Client send channel full, dropping %s message", msg.Type)
	}
}

func ServeWebSocket(p Predictor, cfg Config) gin.HandlerFunc {
	cfg = cfg.withDefaults()
	upgrader := websocket.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.WarnCtxf(c.Request.Context(), "WebSocket upgrade failed: %v", err)
			return
		}

		// The request context ends when this handler returns; keep its values only.
		ctx := context.WithoutCancel(c.Request.Context())
		client := NewClient(ctx, conn, p, cfg)

		go client.WritePump()
		go client.ReadPump()
	}
}
