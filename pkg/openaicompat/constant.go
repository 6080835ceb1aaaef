package openaicompat

import "time"

const (
	// DefaultModel is the model the assistant was tuned against.
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// Known OpenAI-compatible hosts, selectable by provider name.
var KnownBaseURLs = map[string]string{
	"groq":     DefaultBaseURL,
	"openai":   "https://api.openai.com/v1",
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":  "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// go-openai omits a zero temperature from the payload, which makes the server
// apply its own default. Deterministic calls send this value instead.
const zeroTemperature float32 = 1e-8
