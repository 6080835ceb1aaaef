package intent

import (
	"context"
	"fmt"
	"strings"

	"soroia/internal/model"
	"soroia/pkg/llmprovider"
)

// Classify determines the intent of utterance. A gateway failure is returned
// as an error; out-of-vocabulary output yields model.IntentUnknown.
func (c *LLMClassifier) Classify(ctx context.Context, utterance, conversationContext string) (model.Intent, error) {
	prompt := fmt.Sprintf(PromptClassifier, conversationContext, utterance)

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.UserMessage(prompt)},
		Temperature: ClassifierTemperature,
		MaxTokens:   ClassifierMaxTokens,
		TopP:        ClassifierTopP,
	})
	if err != nil {
		return model.IntentUnknown, fmt.Errorf("%s: %w", LogPrefixClassify, err)
	}

	raw := resp.Text()
	intent := Parse(raw)
	if intent == model.IntentUnknown {
		c.l.Warnf(ctx, "%s: unrecognised classifier output %q", LogPrefixClassify, raw)
	} else {
		c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)
	}
	return intent, nil
}

// Parse maps a raw classifier answer to an Intent. Only surrounding quotes,
// markup and punctuation are stripped; anything else is IntentUnknown.
func Parse(raw string) model.Intent {
	token := strings.ToUpper(strings.Trim(raw, trimCutset))

	switch token {
	case TokenSQL:
		return model.IntentDataLookup
	case TokenRAG:
		return model.IntentDocumentRetrieval
	case TokenInteraccion, TokenInteraccionAcc:
		return model.IntentSocial
	case TokenNo:
		return model.IntentRejected
	default:
		return model.IntentUnknown
	}
}
