package usecase

import (
	"context"
	"errors"
	"strings"

	"soroia/internal/chat"
	"soroia/internal/narrator"
	"soroia/internal/session"
)

// SendMessage routes one utterance. A narration failure is not returned: the
// session already holds the generic apology and the caller shows it.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	var s *session.Session
	if input.CreateIfMissing {
		s = uc.store.GetOrCreate(input.SessionID)
	} else {
		var err error
		if s, err = uc.store.Get(input.SessionID); err != nil {
			return chat.SendMessageOutput{}, err
		}
	}

	before := len(s.Turns())
	reply, err := uc.assistant.HandleTurn(ctx, s, input.Message)
	if err != nil && !errors.Is(err, narrator.ErrNarrationFailed) {
		return chat.SendMessageOutput{}, err
	}
	if err != nil {
		uc.l.Warnf(ctx, "uc.SendMessage HandleTurn: %v", err)
	}

	turns := s.Turns()
	return chat.SendMessageOutput{
		Reply:    reply,
		NewTurns: turns[min(before, len(turns)):],
	}, nil
}
