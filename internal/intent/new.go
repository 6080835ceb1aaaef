package intent

import (
	"context"

	"soroia/internal/model"
	"soroia/pkg/llmprovider"
	"soroia/pkg/log"
)

// Classifier maps an utterance to one of the routing intents.
type Classifier interface {
	Classify(ctx context.Context, utterance, conversationContext string) (model.Intent, error)
}

// LLMClassifier classifies user intent with a single short generation.
type LLMClassifier struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier
func New(llm llmprovider.Generator, l log.Logger) *LLMClassifier {
	return &LLMClassifier{
		llm: llm,
		l:   l,
	}
}
