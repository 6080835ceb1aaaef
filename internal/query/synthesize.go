package query

import (
	"context"
	"fmt"

	"soroia/pkg/llmprovider"
)

// Synthesize generates a query for utterance and validates it.
func (s *LLMSynthesizer) Synthesize(ctx context.Context, utterance, conversationContext string) (string, error) {
	prompt := fmt.Sprintf(PromptSynthesize, s.matchPolicy, conversationContext, utterance)

	resp, err := s.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.UserMessage(prompt)},
		Temperature: SynthesisTemperature,
		MaxTokens:   SynthesisMaxTokens,
		TopP:        SynthesisTopP,
		Stream:      true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	q, err := Validate(StripCodeFence(resp.Text()))
	if err != nil {
		s.l.Warnf(ctx, "%s: rejected generated query: %v", LogPrefixSynthesize, err)
		return "", err
	}

	s.l.Debugf(ctx, "%s: generated query: %s", LogPrefixSynthesize, q)
	return q, nil
}
