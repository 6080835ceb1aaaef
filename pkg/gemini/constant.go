package gemini

import "time"

// ProviderName is the name the gateway reports for this client.
const ProviderName = "gemini"

const (
	// DefaultModel is the fallback model when no OpenAI-compatible host answers.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the generative language endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

const (
	generatePathFormat = "%s/models/%s:generateContent"
	apiKeyHeader       = "x-goog-api-key"
)

// Gemini only knows these two roles; system prompts travel as systemInstruction.
const (
	roleUser  = "user"
	roleModel = "model"
)
