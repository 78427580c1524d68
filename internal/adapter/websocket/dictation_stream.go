package websocket

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/edustaff/staffhub/internal/ports"
)

// DictationStreamHandler accepts transcript chunks from the browser as the
// staff member dictates, and on finalize runs the full transcript through the
// voice-to-template pipeline.
type DictationStreamHandler struct {
	voice  ports.VoiceService
	logger *zap.Logger
}

type dictationMessage struct {
	Type    string `json:"type"` // "chunk", "finalize" or "reset"
	Text    string `json:"text,omitempty"`
	StaffID string `json:"staff_id,omitempty"`
}

func NewDictationStreamHandler(voice ports.VoiceService, logger *zap.Logger) *DictationStreamHandler {
	return &DictationStreamHandler{
		voice:  voice,
		logger: logger,
	}
}

// HandleDictationStream manages one dictation session per connection
func (h *DictationStreamHandler) HandleDictationStream(c *websocket.Conn) {
	ctx := context.Background()
	var chunks []string

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			break
		}

		var msg dictationMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.writeError(c, "invalid message")
			continue
		}

		switch msg.Type {
		case "chunk":
			chunks = append(chunks, msg.Text)

		case "reset":
			chunks = chunks[:0]

		case "finalize":
			transcript := strings.Join(chunks, " ")
			chunks = chunks[:0]

			result, err := h.voice.ProcessVoiceToTemplate(ctx, transcript, msg.StaffID)
			if err != nil {
				h.logger.Error("Failed to process dictation", zap.Error(err))
				h.writeError(c, "processing failed")
				continue
			}

			payload, _ := json.Marshal(map[string]interface{}{
				"type":   "result",
				"result": result,
			})
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		default:
			h.writeError(c, "unknown message type")
		}
	}
}

func (h *DictationStreamHandler) writeError(c *websocket.Conn, message string) {
	payload, _ := json.Marshal(map[string]string{
		"type":  "error",
		"error": message,
	})
	if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
		h.logger.Warn("Failed to write websocket error", zap.Error(err))
	}
}

// SetupRoutes registers the websocket endpoints: the push-only updates feed
// and the bidirectional dictation stream.
func SetupRoutes(app *fiber.App, hub *Hub, dictation *DictationStreamHandler) {
	upgrade := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	app.Use("/ws/updates", upgrade)
	app.Get("/ws/updates", websocket.New(func(c *websocket.Conn) {
		staffID, _ := c.Locals("staff_id").(string)
		hub.AddClient(c, staffID)
	}))

	app.Use("/ws/dictation", upgrade)
	app.Get("/ws/dictation", websocket.New(dictation.HandleDictationStream))
}
