package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"soroia/internal/chat"
	"soroia/internal/chat/delivery/telegram"
	"soroia/internal/model"
	"soroia/internal/session"
	"soroia/pkg/log"
	pkgTelegram "soroia/pkg/telegram"
)

type mockChatUseCase struct {
	mu      sync.Mutex
	inputs  []chat.SendMessageInput
	resets  []string
	sendOut chat.SendMessageOutput
	sendErr error
}

func (m *mockChatUseCase) CreateSession(ctx context.Context) chat.SessionOutput {
	return chat.SessionOutput{}
}
func (m *mockChatUseCase) GetSession(ctx context.Context, id string) (chat.SessionOutput, error) {
	return chat.SessionOutput{}, nil
}
func (m *mockChatUseCase) DeleteSession(ctx context.Context, id string) error { return nil }
func (m *mockChatUseCase) ResetSession(ctx context.Context, id string) chat.SessionOutput {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, id)
	return chat.SessionOutput{ID: id}
}
func (m *mockChatUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
	return m.sendOut, m.sendErr
}
func (m *mockChatUseCase) OpenDetail(ctx context.Context, input chat.OpenDetailInput) (chat.DetailOutput, error) {
	return chat.DetailOutput{}, nil
}
func (m *mockChatUseCase) CloseDetail(ctx context.Context, id string) error { return nil }

type mockImages struct {
	missing string
}

func (m *mockImages) Load(ctx context.Context, path string) ([]byte, error) {
	if path == m.missing {
		return nil, errors.New("not found")
	}
	return []byte{0xFF, 0xD8, 0xFF}, nil
}

// tgRecorder captures what the bot sends to the Telegram API.
type tgRecorder struct {
	mu       sync.Mutex
	messages []string
	captions []string
}

func (r *tgRecorder) handler(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case strings.HasSuffix(req.URL.Path, "/sendMessage"):
		var payload map[string]interface{}
		json.NewDecoder(req.Body).Decode(&payload)
		if text, ok := payload["text"].(string); ok {
			r.messages = append(r.messages, text)
		}
	case strings.HasSuffix(req.URL.Path, "/sendPhoto"):
		if err := req.ParseMultipartForm(1 << 20); err == nil {
			r.captions = append(r.captions, req.FormValue("caption"))
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"ok": true}`))
}

func (r *tgRecorder) wait(messages, photos int) ([]string, []string) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		done := len(r.messages) >= messages && len(r.captions) >= photos
		r.mu.Unlock()
		if done {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...), append([]string(nil), r.captions...)
}

func newTestEnv(t *testing.T, uc chat.UseCase, images telegram.ImageLoader) (*gin.Engine, *tgRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := &tgRecorder{}
	tgServer := httptest.NewServer(http.HandlerFunc(rec.handler))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	engine := gin.New()
	h := telegram.New(log.NewNop(), uc, bot, images)
	engine.POST("/webhook/telegram", h.HandleWebhook)
	return engine, rec
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	engine, _ := newTestEnv(t, &mockChatUseCase{}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader("{bad"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_IgnoresNonMessage(t *testing.T) {
	engine, _ := newTestEnv(t, &mockChatUseCase{}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{"update_id": 7}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored ack, got %d %s", w.Code, w.Body.String())
	}
}

func TestHandleWebhook_Commands(t *testing.T) {
	t.Run("Start", func(t *testing.T) {
		engine, rec := newTestEnv(t, &mockChatUseCase{}, nil)
		if w := sendWebhook(engine, "/start"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		msgs, _ := rec.wait(1, 0)
		if len(msgs) != 1 || msgs[0] != session.Greeting {
			t.Errorf("expected greeting, got %v", msgs)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		uc := &mockChatUseCase{}
		engine, rec := newTestEnv(t, uc, nil)
		sendWebhook(engine, "/reset")
		msgs, _ := rec.wait(1, 0)
		if len(msgs) != 1 || !strings.Contains(msgs[0], session.Greeting) {
			t.Errorf("expected reset greeting, got %v", msgs)
		}
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if len(uc.resets) != 1 || uc.resets[0] != "tg:123" {
			t.Errorf("expected reset of tg:123, got %v", uc.resets)
		}
	})
}

func TestHandleWebhook_Message(t *testing.T) {
	t.Run("Reply With Artifacts", func(t *testing.T) {
		uc := &mockChatUseCase{sendOut: chat.SendMessageOutput{
			Reply: model.Turn{
				Role:    model.RoleAssistant,
				Content: "Estas son las obras de 1909.",
				Artifacts: []model.Artifact{
					{Path: "imagenes/00445/00445_1.jpg", Label: "00445", Inventory: "00445"},
					{Path: "imagenes/00446/00446_1.jpg", Label: "00446", Inventory: "00446"},
				},
			},
		}}
		engine, rec := newTestEnv(t, uc, &mockImages{missing: "imagenes/00446/00446_1.jpg"})

		if w := sendWebhook(engine, "¿Qué pintó en 1909?"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		msgs, captions := rec.wait(2, 1)

		if len(msgs) != 2 || msgs[0] != "Estas son las obras de 1909." {
			t.Fatalf("unexpected messages: %v", msgs)
		}
		if !strings.Contains(msgs[1], "00446") {
			t.Errorf("expected unsent artifact listed, got %q", msgs[1])
		}
		if len(captions) != 1 || captions[0] != "Inventario 00445" {
			t.Errorf("unexpected captions: %v", captions)
		}

		uc.mu.Lock()
		defer uc.mu.Unlock()
		if len(uc.inputs) != 1 || uc.inputs[0].SessionID != "tg:123" || !uc.inputs[0].CreateIfMissing {
			t.Errorf("unexpected input: %+v", uc.inputs)
		}
	})

	t.Run("Without Image Loader", func(t *testing.T) {
		uc := &mockChatUseCase{sendOut: chat.SendMessageOutput{
			Reply: model.Turn{
				Role:      model.RoleAssistant,
				Content:   "Aquí está.",
				Artifacts: []model.Artifact{{Path: "imagenes/1/1.jpg", Label: "Sin título"}},
			},
		}}
		engine, rec := newTestEnv(t, uc, nil)
		sendWebhook(engine, "hola")
		msgs, captions := rec.wait(2, 0)
		if len(msgs) != 2 || !strings.Contains(msgs[1], "Sin título") || len(captions) != 0 {
			t.Errorf("unexpected output: %v %v", msgs, captions)
		}
	})

	t.Run("Debug Turns Sent First", func(t *testing.T) {
		reply := model.Turn{Role: model.RoleAssistant, Content: "Respuesta"}
		uc := &mockChatUseCase{sendOut: chat.SendMessageOutput{
			Reply:    reply,
			NewTurns: []model.Turn{
				{Role: model.RoleUser, Content: "hola"},
				{Role: model.RoleSystem, Content: "Intención: SOCIAL"},
				reply,
			},
		}}
		engine, rec := newTestEnv(t, uc, nil)
		sendWebhook(engine, "hola")
		msgs, _ := rec.wait(2, 0)
		if len(msgs) != 2 || msgs[0] != "Intención: SOCIAL" || msgs[1] != "Respuesta" {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("Busy Session", func(t *testing.T) {
		engine, rec := newTestEnv(t, &mockChatUseCase{sendErr: session.ErrSessionBusy}, nil)
		sendWebhook(engine, "hola")
		msgs, _ := rec.wait(1, 0)
		if len(msgs) != 1 || !strings.Contains(msgs[0], "Espera un momento") {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		engine, rec := newTestEnv(t, &mockChatUseCase{sendErr: errors.New("boom")}, nil)
		sendWebhook(engine, "hola")
		msgs, _ := rec.wait(1, 0)
		if len(msgs) != 1 || !strings.Contains(msgs[0], "Se ha producido un error") {
			t.Errorf("unexpected messages: %v", msgs)
		}
	})
}

func TestHandleWebhook_PhotoCaption(t *testing.T) {
	uc := &mockChatUseCase{sendOut: chat.SendMessageOutput{
		Reply: model.Turn{Role: model.RoleAssistant, Content: "Parece una escena de playa."},
	}}
	engine, rec := newTestEnv(t, uc, nil)

	body := `{"update_id": 2, "message": {"message_id": 3, "chat": {"id": 123, "type": "private"}, "caption": "¿Qué cuadro es este?"}}`
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs, _ := rec.wait(1, 0)
	if len(msgs) != 1 || msgs[0] != "Parece una escena de playa." {
		t.Fatalf("unexpected messages: %v", msgs)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.inputs) != 1 || uc.inputs[0].Message != "¿Qué cuadro es este?" {
		t.Errorf("expected the caption as the question, got %+v", uc.inputs)
	}
}
