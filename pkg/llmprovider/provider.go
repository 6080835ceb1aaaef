package llmprovider

import (
	"context"
	"strings"
)

// Generator is the single-call surface used by pipeline components.
// Both Manager and every Provider satisfy it.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "groq", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	TopP              float64
	MaxTokens         int
	// Stream asks providers that support it to consume a token stream.
	// The caller still receives one accumulated Response.
	Stream bool
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a text segment of a message
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text joins all text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// UserMessage builds a single-part user message.
func UserMessage(text string) Message {
	return Message{Role: "user", Parts: []Part{{Text: text}}}
}

// AssistantMessage builds a single-part assistant message.
func AssistantMessage(text string) Message {
	return Message{Role: "assistant", Parts: []Part{{Text: text}}}
}

// SystemMessage builds a system instruction.
func SystemMessage(text string) *Message {
	return &Message{Role: "system", Parts: []Part{{Text: text}}}
}
