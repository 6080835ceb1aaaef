package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"soroia/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastCaption string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req telegram.SetWebhookRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.AllowedUpdates) != 1 || req.AllowedUpdates[0] != "message" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "error_code": 400, "description": "unexpected allowed_updates"}`))
				return
			}
			if req.URL == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "error_code": 400, "description": "invalid url"}`))
				return
			}
			if req.URL == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			text := req["text"].(string)

			if text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			if text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		if strings.HasSuffix(path, "/sendPhoto") {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if r.FormValue("chat_id") != "12345" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "chat not found"}`))
				return
			}
			if _, _, err := r.FormFile("photo"); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			lastCaption = r.FormValue("caption")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL) // Route commands to test server instead of api.telegram.org

	t.Run("SetWebhook Success", func(t *testing.T) {
		err := bot.SetWebhook("https://example.com/webhook")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook("cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		err := bot.SetWebhook("cause_500")
		if err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		err := bot.SendMessage(12345, "Hola")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageWithMode Success", func(t *testing.T) {
		err := bot.SendMessageWithMode(12345, "Hola", "Markdown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		err := bot.SendMessage(12345, "cause_500")
		if err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendPhoto Success", func(t *testing.T) {
		err := bot.SendPhoto(12345, "MS-0001.jpg", []byte{0xff, 0xd8}, "Obra MS-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastCaption != "Obra MS-0001" {
			t.Errorf("unexpected caption: %q", lastCaption)
		}
	})

	t.Run("SendPhoto Caption Truncated", func(t *testing.T) {
		err := bot.SendPhoto(12345, "a.jpg", []byte{1}, strings.Repeat("á", telegram.MaxCaptionLength+10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := len([]rune(lastCaption)); n != telegram.MaxCaptionLength {
			t.Errorf("expected caption of %d runes, got %d", telegram.MaxCaptionLength, n)
		}
	})

	t.Run("SendPhoto API Failed", func(t *testing.T) {
		err := bot.SendPhoto(999, "a.jpg", []byte{1}, "")
		if err == nil || !strings.Contains(err.Error(), "chat not found") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		err := badBot.SendMessage(12345, "fail")
		if err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}

func TestMessageQuery(t *testing.T) {
	tests := []struct {
		name string
		msg  telegram.Message
		want string
	}{
		{"Text", telegram.Message{Text: "¿Dónde nació Sorolla?"}, "¿Dónde nació Sorolla?"},
		{"Photo Caption", telegram.Message{Caption: "¿Qué cuadro es este?"}, "¿Qué cuadro es este?"},
		{"Text Wins Over Caption", telegram.Message{Text: "hola", Caption: "adiós"}, "hola"},
		{"Empty", telegram.Message{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.msg.Query(); got != tt.want {
				t.Errorf("Query() = %q, want %q", got, tt.want)
			}
		})
	}
}
