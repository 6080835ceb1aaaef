package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"soroia/internal/model"
)

// Session is the per-conversation context object: the rolling turn history
// plus the currently opened detail view. Safe for concurrent use.
type Session struct {
	id string

	mu     sync.Mutex
	turns  []model.Turn
	detail *model.Detail
	busy   bool
}

// New creates a session seeded with the greeting turn.
func New(id string) *Session {
	return &Session{
		id: id,
		turns: []model.Turn{{
			Role:      model.RoleAssistant,
			Content:   Greeting,
			CreatedAt: time.Now(),
		}},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AppendTurn adds t to the history. Turns are never modified afterwards.
func (s *Session) AppendTurn(t model.Turn) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if len(t.Artifacts) > 0 {
		t.Artifacts = append([]model.Artifact(nil), t.Artifacts...)
	}

	s.mu.Lock()
	s.turns = append(s.turns, t)
	s.mu.Unlock()
}

// Turns returns a copy of the history in order.
func (s *Session) Turns() []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// SetDetail opens the detail view for an artifact.
func (s *Session) SetDetail(d model.Detail) {
	s.mu.Lock()
	s.detail = &d
	s.mu.Unlock()
}

// ClearDetail closes the detail view.
func (s *Session) ClearDetail() {
	s.mu.Lock()
	s.detail = nil
	s.mu.Unlock()
}

// Detail returns the opened detail view, if any.
func (s *Session) Detail() (model.Detail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detail == nil {
		return model.Detail{}, false
	}
	return *s.detail, true
}

// Context renders the last n user/assistant pairs as
// "[Usuario]: u\n[Asistente]: a\n" blocks. A pair is a user turn and the
// assistant reply that follows it, so the greeting and a user turn still
// awaiting its reply are left out.
func (s *Session) Context(n int) string {
	if n <= 0 {
		return ""
	}

	type pair struct{ user, assistant string }

	s.mu.Lock()
	var (
		pairs   []pair
		pending *string
	)
	for i := range s.turns {
		t := &s.turns[i]
		switch t.Role {
		case model.RoleUser:
			pending = &t.Content
		case model.RoleAssistant:
			if pending != nil {
				pairs = append(pairs, pair{user: *pending, assistant: t.Content})
				pending = nil
			}
		}
	}
	s.mu.Unlock()

	if len(pairs) > n {
		pairs = pairs[len(pairs)-n:]
	}

	var sb strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&sb, "[Usuario]: %s\n[Asistente]: %s\n", p.user, p.assistant)
	}
	return sb.String()
}

// Begin marks a routing turn as in flight. It fails with ErrSessionBusy when
// another turn has not yet called End.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return ErrSessionBusy
	}
	s.busy = true
	return nil
}

// End releases the in-flight marker set by Begin.
func (s *Session) End() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
