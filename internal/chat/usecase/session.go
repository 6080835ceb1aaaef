package usecase

import (
	"context"

	"soroia/internal/chat"
	"soroia/internal/session"
)

func (uc *implUseCase) CreateSession(ctx context.Context) chat.SessionOutput {
	s := uc.store.Create()
	uc.l.Infof(ctx, "uc.CreateSession: %s", s.ID())
	return snapshot(s)
}

func (uc *implUseCase) GetSession(ctx context.Context, id string) (chat.SessionOutput, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return chat.SessionOutput{}, err
	}
	return snapshot(s), nil
}

func (uc *implUseCase) DeleteSession(ctx context.Context, id string) error {
	if !uc.store.Delete(id) {
		return session.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "uc.DeleteSession: %s", id)
	return nil
}

// ResetSession drops the session keyed by id and starts a fresh one under the same id.
func (uc *implUseCase) ResetSession(ctx context.Context, id string) chat.SessionOutput {
	uc.store.Delete(id)
	return snapshot(uc.store.GetOrCreate(id))
}

func snapshot(s *session.Session) chat.SessionOutput {
	out := chat.SessionOutput{ID: s.ID(), Turns: s.Turns()}
	if d, ok := s.Detail(); ok {
		out.Detail = &d
	}
	return out
}
