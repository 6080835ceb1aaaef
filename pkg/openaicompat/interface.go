package openaicompat

import "context"

// IClient is a chat-completions client for any OpenAI-compatible host.
// Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends a chat completion request. When req.Stream is set the
	// token stream is consumed and the accumulated text is returned.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
