package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

func newClientImpl(cfg Config) *clientImpl {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	clientConfig.HTTPClient = cfg.HTTPClient

	return &clientImpl{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// GenerateContent sends a chat completion request.
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := c.transformRequest(req)
	if req.Stream {
		return c.stream(ctx, chatReq)
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return &Response{Model: resp.Model}, nil
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// stream consumes the incremental token stream until EOF and returns the full text.
func (c *clientImpl) stream(ctx context.Context, chatReq openai.ChatCompletionRequest) (*Response, error) {
	chatReq.Stream = true

	stream, err := c.client.CreateChatCompletionStream(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: failed to create stream: %w", err)
	}
	defer stream.Close()

	var sb strings.Builder
	model := c.model
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("openaicompat: stream error: %w", err)
		}
		if chunk.Model != "" {
			model = chunk.Model
		}
		if len(chunk.Choices) > 0 {
			sb.WriteString(chunk.Choices[0].Delta.Content)
		}
	}

	return &Response{Content: sb.String(), Model: model}, nil
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

func (c *clientImpl) transformRequest(req *Request) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    normalizeRole(m.Role),
			Content: m.Content,
		})
	}

	temperature := float32(req.Temperature)
	if temperature <= 0 {
		temperature = zeroTemperature
	}

	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: temperature,
		TopP:        float32(req.TopP),
	}
}

func normalizeRole(role string) string {
	switch role {
	case "system":
		return openai.ChatMessageRoleSystem
	case "assistant", "model":
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
