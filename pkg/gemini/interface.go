package gemini

import "context"

// IClient is a generateContent client. Requests carry the same temperature,
// top-p and output cap as the OpenAI-compatible providers, so either can serve
// as a gateway fallback. Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends a non-streaming generation request.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New validates cfg, fills its defaults and returns a client.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
