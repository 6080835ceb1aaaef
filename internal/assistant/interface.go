package assistant

import (
	"context"

	"soroia/internal/model"
	"soroia/internal/session"
)

// UseCase routes one user utterance through the pipeline.
type UseCase interface {
	// HandleTurn appends the user turn and the reply to s and returns the reply.
	// Debug turns, when enabled, are appended to s before the reply.
	HandleTurn(ctx context.Context, s *session.Session, utterance string) (model.Turn, error)
}
