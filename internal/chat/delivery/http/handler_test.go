package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"soroia/config"
	"soroia/internal/artifact"
	"soroia/internal/catalog"
	"soroia/internal/chat"
	"soroia/internal/middleware"
	"soroia/internal/model"
	"soroia/internal/session"
	"soroia/pkg/log"
)

type mockUseCase struct {
	sendFunc   func(input chat.SendMessageInput) (chat.SendMessageOutput, error)
	detailFunc func(input chat.OpenDetailInput) (chat.DetailOutput, error)
	getErr     error
	closed     string
}

func (m *mockUseCase) CreateSession(ctx context.Context) chat.SessionOutput {
	return chat.SessionOutput{ID: "s1", Turns: []model.Turn{{Role: model.RoleAssistant, Content: session.Greeting}}}
}

func (m *mockUseCase) GetSession(ctx context.Context, id string) (chat.SessionOutput, error) {
	if m.getErr != nil {
		return chat.SessionOutput{}, m.getErr
	}
	return chat.SessionOutput{ID: id, Detail: &model.Detail{Inventory: "00445", Path: "imagenes/00445/00445_1.jpg"}}, nil
}

func (m *mockUseCase) DeleteSession(ctx context.Context, id string) error {
	if id == "missing" {
		return session.ErrSessionNotFound
	}
	return nil
}

func (m *mockUseCase) ResetSession(ctx context.Context, id string) chat.SessionOutput {
	return chat.SessionOutput{ID: id}
}

func (m *mockUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	return m.sendFunc(input)
}

func (m *mockUseCase) OpenDetail(ctx context.Context, input chat.OpenDetailInput) (chat.DetailOutput, error) {
	return m.detailFunc(input)
}

func (m *mockUseCase) CloseDetail(ctx context.Context, id string) error {
	m.closed = id
	return nil
}

type mockImages struct {
	data []byte
	err  error
}

func (m *mockImages) Load(ctx context.Context, path string) ([]byte, error) {
	return m.data, m.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newRouter(uc chat.UseCase, images ImageLoader, rl config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc, images)
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), rl))
	return r
}

func do(t *testing.T, r *gin.Engine, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestSessions(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc, &mockImages{}, config.RateLimitConfig{})

	t.Run("Create", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/api/v1/chat/sessions", nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp sessionResp
		json.Unmarshal(env.Data, &resp)
		if resp.ID != "s1" || len(resp.Turns) != 1 || resp.Turns[0].Content != session.Greeting {
			t.Errorf("unexpected session: %+v", resp)
		}
	})

	t.Run("Get With Detail", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/api/v1/chat/sessions/abc", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp sessionResp
		json.Unmarshal(env.Data, &resp)
		if resp.Detail == nil || resp.Detail.Inventory != "00445" {
			t.Errorf("expected detail, got %+v", resp.Detail)
		}
	})

	t.Run("Get Unknown", func(t *testing.T) {
		missing := &mockUseCase{getErr: session.ErrSessionNotFound}
		w, _ := do(t, newRouter(missing, &mockImages{}, config.RateLimitConfig{}), http.MethodGet, "/api/v1/chat/sessions/nope", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Delete Unknown", func(t *testing.T) {
		w, _ := do(t, r, http.MethodDelete, "/api/v1/chat/sessions/missing", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Close Detail", func(t *testing.T) {
		w, _ := do(t, r, http.MethodDelete, "/api/v1/chat/sessions/abc/detail", nil)
		if w.Code != http.StatusOK || uc.closed != "abc" {
			t.Errorf("expected detail closed, got %d %q", w.Code, uc.closed)
		}
	})
}

func TestSendMessage(t *testing.T) {
	reply := model.Turn{
		Role:      model.RoleAssistant,
		Content:   "Aquí tienes las obras.",
		Artifacts: []model.Artifact{{Path: "imagenes/00445/00445_1.jpg", Label: "00445", Inventory: "00445"}},
		CreatedAt: time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		var got chat.SendMessageInput
		uc := &mockUseCase{sendFunc: func(input chat.SendMessageInput) (chat.SendMessageOutput, error) {
			got = input
			return chat.SendMessageOutput{
				Reply:    reply,
				NewTurns: []model.Turn{{Role: model.RoleUser, Content: input.Message}, reply},
			}, nil
		}}
		r := newRouter(uc, &mockImages{}, config.RateLimitConfig{})

		w, env := do(t, r, http.MethodPost, "/api/v1/chat/sessions/s1/messages", map[string]string{"message": "¿Qué cuadros pintó en 1909?"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got.SessionID != "s1" || got.CreateIfMissing {
			t.Errorf("unexpected input: %+v", got)
		}
		var resp sendMessageResp
		json.Unmarshal(env.Data, &resp)
		if resp.Reply.Content != reply.Content || len(resp.Reply.Artifacts) != 1 || len(resp.Turns) != 2 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("Empty Message", func(t *testing.T) {
		uc := &mockUseCase{sendFunc: func(input chat.SendMessageInput) (chat.SendMessageOutput, error) {
			t.Fatal("use case should not be called")
			return chat.SendMessageOutput{}, nil
		}}
		w, _ := do(t, newRouter(uc, &mockImages{}, config.RateLimitConfig{}), http.MethodPost, "/api/v1/chat/sessions/s1/messages", map[string]string{"message": "  "})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	errCases := []struct {
		name string
		err  error
		want int
	}{
		{"Unknown Session", session.ErrSessionNotFound, http.StatusNotFound},
		{"Busy Session", session.ErrSessionBusy, http.StatusConflict},
		{"Internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{sendFunc: func(input chat.SendMessageInput) (chat.SendMessageOutput, error) {
				return chat.SendMessageOutput{}, tc.err
			}}
			w, _ := do(t, newRouter(uc, &mockImages{}, config.RateLimitConfig{}), http.MethodPost, "/api/v1/chat/sessions/s1/messages", map[string]string{"message": "hola"})
			if w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("Rate Limited", func(t *testing.T) {
		uc := &mockUseCase{sendFunc: func(input chat.SendMessageInput) (chat.SendMessageOutput, error) {
			return chat.SendMessageOutput{Reply: reply}, nil
		}}
		// 10 per minute gives a burst of one request.
		r := newRouter(uc, &mockImages{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})
		if w, _ := do(t, r, http.MethodPost, "/api/v1/chat/sessions/s1/messages", map[string]string{"message": "hola"}); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w, _ := do(t, r, http.MethodPost, "/api/v1/chat/sessions/s1/messages", map[string]string{"message": "hola"}); w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})
}

func TestOpenDetail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{detailFunc: func(input chat.OpenDetailInput) (chat.DetailOutput, error) {
			return chat.DetailOutput{
				Detail: model.Detail{Inventory: "00445", Path: input.Path},
				Record: catalog.Record{Inventory: "00445", Fields: []catalog.Field{{Label: "Título", Value: "Paseo a orillas del mar"}}},
			}, nil
		}}
		w, env := do(t, newRouter(uc, &mockImages{}, config.RateLimitConfig{}), http.MethodPost, "/api/v1/chat/sessions/s1/detail", map[string]string{"path": "imagenes/00445/00445_1.jpg"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp detailResp
		json.Unmarshal(env.Data, &resp)
		if resp.Inventory != "00445" || len(resp.Fields) != 1 || resp.Fields[0].Value != "Paseo a orillas del mar" {
			t.Errorf("unexpected detail: %+v", resp)
		}
	})

	errCases := []struct {
		name string
		err  error
		want int
	}{
		{"Not In Session", chat.ErrArtifactNotInSession, http.StatusBadRequest},
		{"Record Missing", catalog.ErrRecordNotFound, http.StatusNotFound},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{detailFunc: func(input chat.OpenDetailInput) (chat.DetailOutput, error) {
				return chat.DetailOutput{}, tc.err
			}}
			w, _ := do(t, newRouter(uc, &mockImages{}, config.RateLimitConfig{}), http.MethodPost, "/api/v1/chat/sessions/s1/detail", map[string]string{"path": "imagenes/1/1.jpg"})
			if w.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("Missing Path", func(t *testing.T) {
		w, _ := do(t, newRouter(&mockUseCase{}, &mockImages{}, config.RateLimitConfig{}), http.MethodPost, "/api/v1/chat/sessions/s1/detail", map[string]string{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestImage(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

	t.Run("Success", func(t *testing.T) {
		r := newRouter(&mockUseCase{}, &mockImages{data: jpeg}, config.RateLimitConfig{})
		w, _ := do(t, r, http.MethodGet, "/api/v1/artifacts/image?path=imagenes/00445/00445_1.jpg", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("expected image/jpeg, got %q", ct)
		}
		if !bytes.Equal(w.Body.Bytes(), jpeg) {
			t.Errorf("unexpected body")
		}
	})

	t.Run("Invalid Path", func(t *testing.T) {
		r := newRouter(&mockUseCase{}, &mockImages{err: artifact.ErrInvalidPath}, config.RateLimitConfig{})
		w, _ := do(t, r, http.MethodGet, "/api/v1/artifacts/image?path=../etc/passwd", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		r := newRouter(&mockUseCase{}, &mockImages{err: artifact.ErrNotFound}, config.RateLimitConfig{})
		w, _ := do(t, r, http.MethodGet, "/api/v1/artifacts/image?path=imagenes/9/9.jpg", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Missing Path", func(t *testing.T) {
		r := newRouter(&mockUseCase{}, &mockImages{}, config.RateLimitConfig{})
		w, _ := do(t, r, http.MethodGet, "/api/v1/artifacts/image", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Rate Limited", func(t *testing.T) {
		// 10 per minute gives a burst of one request.
		r := newRouter(&mockUseCase{}, &mockImages{data: jpeg}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})
		target := "/api/v1/artifacts/image?path=imagenes/00445/00445_1.jpg"
		if w, _ := do(t, r, http.MethodGet, target, nil); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w, _ := do(t, r, http.MethodGet, target, nil); w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})
}
