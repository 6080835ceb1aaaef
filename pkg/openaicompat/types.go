package openaicompat

import (
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Config holds client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type clientImpl struct {
	client *openai.Client
	model  string
}

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

// Request is a chat completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	TopP        float64
	MaxTokens   int
	Stream      bool
}

// Response is the (accumulated) completion.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Usage tracks token consumption. Streaming responses report zero usage.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
