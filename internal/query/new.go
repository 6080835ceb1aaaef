package query

import (
	"context"

	"soroia/pkg/llmprovider"
	"soroia/pkg/log"
)

// Synthesizer turns a question into a validated read-only query.
type Synthesizer interface {
	Synthesize(ctx context.Context, utterance, conversationContext string) (string, error)
}

// LLMSynthesizer generates queries with the language-model gateway.
type LLMSynthesizer struct {
	llm         llmprovider.Generator
	l           log.Logger
	matchPolicy string
}

var _ Synthesizer = (*LLMSynthesizer)(nil)

// New creates a new LLMSynthesizer. dialect selects the text-matching rule
// given to the model (DialectPostgres or DialectSQLite).
func New(llm llmprovider.Generator, l log.Logger, dialect string) *LLMSynthesizer {
	policy := matchPolicyPostgres
	if dialect == DialectSQLite {
		policy = matchPolicySQLite
	}
	return &LLMSynthesizer{
		llm:         llm,
		l:           l,
		matchPolicy: policy,
	}
}
