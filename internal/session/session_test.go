package session_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"soroia/internal/model"
	"soroia/internal/session"
)

func TestNewSeedsGreeting(t *testing.T) {
	s := session.New("abc")

	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Role != model.RoleAssistant || turns[0].Content != session.Greeting {
		t.Errorf("unexpected greeting turn: %+v", turns[0])
	}
}

func TestContext(t *testing.T) {
	t.Run("Greeting And Pending Question Are Not Pairs", func(t *testing.T) {
		s := session.New("abc")
		s.AppendTurn(model.Turn{Role: model.RoleUser, Content: "hola"})

		if got := s.Context(2); got != "" {
			t.Errorf("Context(2) = %q, want empty", got)
		}
	})

	t.Run("Last Two Of Five Pairs In Order", func(t *testing.T) {
		s := session.New("abc")
		for i := 1; i <= 5; i++ {
			s.AppendTurn(model.Turn{Role: model.RoleUser, Content: fmt.Sprintf("u%d", i)})
			s.AppendTurn(model.Turn{Role: model.RoleSystem, Content: "Clasificación: SQL"})
			s.AppendTurn(model.Turn{Role: model.RoleAssistant, Content: fmt.Sprintf("a%d", i)})
		}
		s.AppendTurn(model.Turn{Role: model.RoleUser, Content: "u6"})

		want := "[Usuario]: u4\n[Asistente]: a4\n[Usuario]: u5\n[Asistente]: a5\n"
		if got := s.Context(2); got != want {
			t.Errorf("Context(2) = %q, want %q", got, want)
		}
	})

	t.Run("Unanswered Question Is Skipped", func(t *testing.T) {
		s := session.New("abc")
		s.AppendTurn(model.Turn{Role: model.RoleUser, Content: "u1"})
		s.AppendTurn(model.Turn{Role: model.RoleUser, Content: "u2"})
		s.AppendTurn(model.Turn{Role: model.RoleAssistant, Content: "a2"})

		want := "[Usuario]: u2\n[Asistente]: a2\n"
		if got := s.Context(2); got != want {
			t.Errorf("Context(2) = %q, want %q", got, want)
		}
	})

	t.Run("Zero Pairs", func(t *testing.T) {
		s := session.New("abc")
		s.AppendTurn(model.Turn{Role: model.RoleUser, Content: "hola"})
		if got := s.Context(0); got != "" {
			t.Errorf("expected empty context, got %q", got)
		}
	})

	t.Run("Fewer Pairs Than Requested", func(t *testing.T) {
		s := session.New("abc")
		if got := s.Context(2); got != "" {
			t.Errorf("expected empty context without user turns, got %q", got)
		}
	})
}

func TestDetail(t *testing.T) {
	s := session.New("abc")

	if _, ok := s.Detail(); ok {
		t.Fatalf("expected no detail on a new session")
	}

	s.SetDetail(model.Detail{Inventory: "00445", Path: "imagenes/00445/00445_1.jpg"})
	d, ok := s.Detail()
	if !ok || d.Inventory != "00445" {
		t.Errorf("unexpected detail: %+v, %v", d, ok)
	}

	s.ClearDetail()
	if _, ok := s.Detail(); ok {
		t.Errorf("expected detail to be cleared")
	}
}

func TestTurnsReturnsCopy(t *testing.T) {
	s := session.New("abc")
	turns := s.Turns()
	turns[0].Content = "changed"

	if s.Turns()[0].Content != session.Greeting {
		t.Errorf("history was mutated through the returned slice")
	}
}

func TestBeginEnd(t *testing.T) {
	s := session.New("abc")

	if err := s.Begin(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Begin(); !errors.Is(err, session.ErrSessionBusy) {
		t.Fatalf("expected ErrSessionBusy, got %v", err)
	}
	s.End()
	if err := s.Begin(); err != nil {
		t.Fatalf("expected Begin to succeed after End, got %v", err)
	}
}

func TestConcurrentAppend(t *testing.T) {
	s := session.New("abc")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AppendTurn(model.Turn{Role: model.RoleUser, Content: "x"})
			_ = s.Context(2)
		}()
	}
	wg.Wait()

	if n := len(s.Turns()); n != 51 {
		t.Errorf("expected 51 turns, got %d", n)
	}
}

func TestStore(t *testing.T) {
	st := session.NewStore(2, time.Minute)

	a := st.Create()
	got, err := st.Get(a.ID())
	if err != nil || got != a {
		t.Fatalf("expected to get created session, got %v, %v", got, err)
	}

	if _, err := st.Get("missing"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	chat := st.GetOrCreate("telegram:42")
	if again := st.GetOrCreate("telegram:42"); again != chat {
		t.Errorf("expected GetOrCreate to return the same session")
	}

	// Capacity 2: creating a third evicts the least recently used (a).
	st.Create()
	if _, err := st.Get(a.ID()); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected oldest session to be evicted, got %v", err)
	}

	if !st.Delete("telegram:42") {
		t.Errorf("expected Delete to report an existing session")
	}
	if st.Delete("telegram:42") {
		t.Errorf("expected second Delete to report missing session")
	}
}

func TestStoreExpiry(t *testing.T) {
	st := session.NewStore(10, 20*time.Millisecond)
	s := st.Create()

	time.Sleep(80 * time.Millisecond)

	if _, err := st.Get(s.ID()); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}
}
