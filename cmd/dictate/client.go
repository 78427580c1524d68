package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ClientConfig holds the dictation client configuration
type ClientConfig struct {
	ServerURL string
	StaffID   string
}

// Client streams transcript chunks to the dictation endpoint and prints
// the extraction results the server sends back.
type Client struct {
	config *ClientConfig
	conn   *websocket.Conn
	log    *zap.Logger

	results chan extractionResult
	done    chan struct{}
	writeMu sync.Mutex
	stopped bool
	mu      sync.Mutex
}

type outboundMessage struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	StaffID string `json:"staff_id,omitempty"`
}

type inboundMessage struct {
	Type   string           `json:"type"`
	Error  string           `json:"error,omitempty"`
	Result extractionResult `json:"result,omitempty"`
}

type extractionResult struct {
	TemplateMatch *struct {
		TemplateID   string `json:"template_id"`
		TemplateName string `json:"template_name"`
	} `json:"template_match"`
	ExtractedData map[string]string `json:"extracted_data"`
	Confidence    float64           `json:"confidence"`
}

// NewClient creates a new dictation client
func NewClient(config *ClientConfig, log *zap.Logger) *Client {
	return &Client{
		config:  config,
		log:     log,
		results: make(chan extractionResult, 1),
		done:    make(chan struct{}),
	}
}

// Connect dials the dictation WebSocket endpoint
func (c *Client) Connect() error {
	c.log.Info("Connecting to dictation endpoint", zap.String("url", c.config.ServerURL))

	conn, _, err := websocket.DefaultDialer.Dial(c.config.ServerURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.config.ServerURL, err)
	}
	c.conn = conn

	go c.readMessages()

	return nil
}

// Stop closes the session
func (c *Client) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	close(c.done)
	if c.conn != nil {
		c.conn.Close()
	}
}

// readMessages reads and processes incoming messages
func (c *Client) readMessages() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			default:
				c.log.Warn("Connection closed", zap.Error(err))
			}
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.Warn("Invalid message from server", zap.ByteString("data", data))
			continue
		}

		switch msg.Type {
		case "result":
			printResult(msg.Result)
			select {
			case c.results <- msg.Result:
			default:
			}
		case "error":
			fmt.Printf("Server error: %s\n", msg.Error)
		default:
			c.log.Debug("Ignoring message", zap.String("type", msg.Type))
		}
	}
}

// SendChunk appends a transcript chunk to the server-side session
func (c *Client) SendChunk(text string) error {
	return c.send(outboundMessage{Type: "chunk", Text: text})
}

// Finalize asks the server to run extraction over the accumulated transcript
func (c *Client) Finalize() error {
	return c.send(outboundMessage{Type: "finalize", StaffID: c.config.StaffID})
}

// Reset discards the accumulated transcript
func (c *Client) Reset() error {
	return c.send(outboundMessage{Type: "reset"})
}

// WaitForResult blocks until an extraction result arrives or times out
func (c *Client) WaitForResult() {
	select {
	case <-c.results:
	case <-time.After(10 * time.Second):
		fmt.Println("Timed out waiting for extraction result")
	case <-c.done:
	}
}

func (c *Client) send(msg outboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// RunInteractive reads commands from stdin until quit or EOF
func (c *Client) RunInteractive() {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, rest, _ := strings.Cut(line, " ")
		switch command {
		case "say":
			if rest == "" {
				fmt.Println("Usage: say <text>")
				continue
			}
			if err := c.SendChunk(rest); err != nil {
				fmt.Printf("Failed to send chunk: %v\n", err)
			}

		case "done":
			if err := c.Finalize(); err != nil {
				fmt.Printf("Failed to finalize: %v\n", err)
				continue
			}
			c.WaitForResult()

		case "reset":
			if err := c.Reset(); err != nil {
				fmt.Printf("Failed to reset: %v\n", err)
			}

		case "quit", "exit":
			c.Stop()
			return

		default:
			fmt.Printf("Unknown command: %s\n", command)
		}
	}
}

func printResult(result extractionResult) {
	if result.TemplateMatch == nil {
		fmt.Printf("No template matched (confidence %.2f)\n", result.Confidence)
		return
	}

	fmt.Printf("Matched %s (%s) with confidence %.2f\n",
		result.TemplateMatch.TemplateName, result.TemplateMatch.TemplateID, result.Confidence)
	for field, value := range result.ExtractedData {
		fmt.Printf("  %s: %s\n", field, value)
	}
}
