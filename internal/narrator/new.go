package narrator

import (
	"context"

	"soroia/internal/model"
	"soroia/pkg/llmprovider"
	"soroia/pkg/log"
)

// Narrator turns pipeline results into a natural-language answer.
type Narrator interface {
	NarrateRows(ctx context.Context, question, query string, rs model.ResultSet, conversationContext string) (string, error)
	NarrateDocuments(ctx context.Context, question string, passages []model.Passage, conversationContext string) (string, error)
	Reply(ctx context.Context, utterance string) (string, error)
}

// LLMNarrator narrates with the language-model gateway.
type LLMNarrator struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Narrator = (*LLMNarrator)(nil)

// New creates a new LLMNarrator
func New(llm llmprovider.Generator, l log.Logger) *LLMNarrator {
	return &LLMNarrator{
		llm: llm,
		l:   l,
	}
}
