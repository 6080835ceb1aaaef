package llmprovider

import (
	"context"
	"strings"

	"soroia/pkg/gemini"
	"soroia/pkg/openaicompat"
)

// OpenAICompatAdapter adapts pkg/openaicompat to llmprovider.Provider interface.
// One adapter type serves every OpenAI-compatible host (groq, openai, deepseek, qwen).
type OpenAICompatAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new adapter reporting the given provider name
func NewOpenAICompatAdapter(name string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openaicompat.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openaicompat.Message{Role: "system", Content: joinParts(req.SystemInstruction.Parts)})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, openaicompat.Message{Role: m.Role, Content: joinParts(m.Parts)})
	}

	resp, err := a.client.GenerateContent(ctx, &openaicompat.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Stream:      req.Stream,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: resp.Content}},
		},
		ProviderName: a.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface.
// Gemini has no streaming path here; Request.Stream is ignored.
type GeminiAdapter struct {
	client gemini.IClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		TopP:              req.TopP,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: gemini.ProviderName, Err: err}
	}

	out := &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: gemini.ProviderName,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return gemini.ProviderName
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers
func joinParts(parts []Part) string {
	if len(parts) == 1 {
		return parts[0].Text
	}
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text
	}
	return strings.Join(texts, "")
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: "assistant", Parts: parts}
}
